package mealplan

import (
	"fmt"
	"math"
	"strings"

	"github.com/pawplan/pawplan-cli/internal/model"
)

var stageBaseFactors = map[string]struct{ neutered, intact float64 }{
	model.StagePuppy:  {2.2, 2.4},
	model.StageAdult:  {1.6, 1.8},
	model.StageSenior: {1.3, 1.4},
}

var activityFactors = map[string]float64{
	model.ActivityLow:      0.9,
	model.ActivityNormal:   1.0,
	model.ActivityHigh:     1.2,
	model.ActivityAthletic: 1.35,
}

type energyRule struct {
	flag       string
	multiplier float64
	note       string
}

// Ordered: the order decides how rationale notes are assembled, the
// multipliers stack the same either way.
var energyRules = []energyRule{
	{model.FlagWeightLoss, 0.85, "Reduced target for weight loss."},
	{model.FlagLowFat, 0.95, "Conservative energy target for fat-sensitive context."},
	{model.FlagKidney, 0.95, "Energy kept conservative; protein strategy must be vet-guided."},
	{model.FlagPicky, 1.0, "Use palatability tactics (warm, rotate, gentle oils)."},
}

func StageForAge(ageYears float64) string {
	if ageYears < 1 {
		return model.StagePuppy
	}
	if ageYears < 7 {
		return model.StageAdult
	}
	return model.StageSenior
}

func RestingEnergy(weightKg float64) (float64, error) {
	if weightKg <= 0 {
		return 0, fmt.Errorf("weight must be > 0")
	}
	return 70 * math.Pow(weightKg, 0.75), nil
}

func MaintenanceFactor(stage, activity string, neutered bool) float64 {
	base, ok := stageBaseFactors[stage]
	if !ok {
		base = stageBaseFactors[model.StageAdult]
	}
	factor := base.intact
	if neutered {
		factor = base.neutered
	}

	boost, ok := activityFactors[activity]
	if !ok {
		boost = 1.0
	}
	return factor * boost
}

func DailyEnergy(profile model.Profile) (model.EnergyBreakdown, error) {
	if profile.WeightKg <= 0 {
		return model.EnergyBreakdown{}, fmt.Errorf("weight must be > 0")
	}
	if profile.AgeYears <= 0 {
		return model.EnergyBreakdown{}, fmt.Errorf("age must be > 0")
	}

	stage := StageForAge(profile.AgeYears)
	rer, err := RestingEnergy(profile.WeightKg)
	if err != nil {
		return model.EnergyBreakdown{}, err
	}
	factor := MaintenanceFactor(stage, profile.Activity, profile.Neutered)
	mer := rer * factor

	active := activeFlags(profile.Flags)
	adjustment := 1.0
	var notes []string
	for _, rule := range energyRules {
		if !active[rule.flag] {
			continue
		}
		adjustment *= rule.multiplier
		notes = append(notes, rule.note)
	}

	explanation := stage
	if len(notes) > 0 {
		explanation += " | " + strings.Join(notes, " ")
	}

	return model.EnergyBreakdown{
		LifeStage:   stage,
		RER:         rer,
		MER:         mer,
		AdjustedMER: mer * adjustment,
		Factor:      factor,
		Adjustment:  adjustment,
		Explanation: explanation,
	}, nil
}

func activeFlags(flags []string) map[string]bool {
	active := make(map[string]bool, len(flags))
	for _, f := range flags {
		if f == model.FlagNone {
			continue
		}
		active[f] = true
	}
	return active
}
