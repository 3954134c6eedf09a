package mealplan

import (
	"github.com/pawplan/pawplan-cli/internal/model"
)

const DefaultKcalPerGram = 1.35

type PlanInput struct {
	Profile     model.Profile
	MeatPct     int
	VegPct      int
	CarbPct     int
	KcalPerGram float64
	Pantry      Pantry
	Mode        string
	Days        int
	Seed        int64
}

type PlanResult struct {
	Energy     model.EnergyBreakdown
	MeatPct    int
	VegPct     int
	CarbPct    int
	DailyGrams float64
	Split      Split
	Days       []model.DayPlan
}

func BuildPlan(in PlanInput) (PlanResult, error) {
	energy, err := DailyEnergy(in.Profile)
	if err != nil {
		return PlanResult{}, err
	}
	meatPct, vegPct, carbPct, err := Normalize(in.MeatPct, in.VegPct, in.CarbPct)
	if err != nil {
		return PlanResult{}, err
	}
	dailyGrams, err := EstimateGrams(energy.AdjustedMER, in.KcalPerGram)
	if err != nil {
		return PlanResult{}, err
	}
	split, err := SplitByRatio(dailyGrams, meatPct, vegPct, carbPct)
	if err != nil {
		return PlanResult{}, err
	}

	var recs model.Recommendations
	if in.Mode == model.ModeSmart {
		recs = RecommendForProfile(in.Profile)
	}
	rotation, err := GenerateRotation(RotationInput{
		Pantry:          in.Pantry,
		Recommendations: recs,
		Mode:            in.Mode,
		Days:            in.Days,
		Seed:            in.Seed,
	})
	if err != nil {
		return PlanResult{}, err
	}

	days := make([]model.DayPlan, 0, len(rotation))
	for _, sel := range rotation {
		nutrition, err := EstimateNutrition([]Selection{
			{Name: sel.Meat, Grams: split.MeatG},
			{Name: sel.Veg, Grams: split.VegG},
			{Name: sel.Carb, Grams: split.CarbG},
		})
		if err != nil {
			return PlanResult{}, err
		}
		days = append(days, model.DayPlan{
			Day:       sel.Day,
			Meat:      sel.Meat,
			Veg:       sel.Veg,
			Carb:      sel.Carb,
			MeatG:     split.MeatG,
			VegG:      split.VegG,
			CarbG:     split.CarbG,
			Nutrition: nutrition,
		})
	}

	return PlanResult{
		Energy:     energy,
		MeatPct:    meatPct,
		VegPct:     vegPct,
		CarbPct:    carbPct,
		DailyGrams: dailyGrams,
		Split:      split,
		Days:       days,
	}, nil
}
