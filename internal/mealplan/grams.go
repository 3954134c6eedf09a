package mealplan

import (
	"fmt"

	"github.com/pawplan/pawplan-cli/internal/catalog"
	"github.com/pawplan/pawplan-cli/internal/model"
)

type Split struct {
	MeatG float64
	VegG  float64
	CarbG float64
}

type Selection struct {
	Name  string
	Grams float64
}

func EstimateGrams(dailyKcal, kcalPerGram float64) (float64, error) {
	if dailyKcal < 0 {
		return 0, fmt.Errorf("daily kcal must be >= 0")
	}
	if kcalPerGram <= 0 {
		return 0, fmt.Errorf("kcal-per-gram must be > 0")
	}
	return dailyKcal / kcalPerGram, nil
}

func SplitByRatio(totalGrams float64, meatPct, vegPct, carbPct int) (Split, error) {
	if totalGrams < 0 {
		return Split{}, fmt.Errorf("total grams must be >= 0")
	}
	if meatPct < 0 || vegPct < 0 || carbPct < 0 {
		return Split{}, fmt.Errorf("ratio percentages must be >= 0")
	}
	return Split{
		MeatG: totalGrams * float64(meatPct) / 100,
		VegG:  totalGrams * float64(vegPct) / 100,
		CarbG: totalGrams * float64(carbPct) / 100,
	}, nil
}

func EstimateNutrition(selections []Selection) (model.NutritionTotals, error) {
	var totals model.NutritionTotals
	for _, sel := range selections {
		if sel.Grams < 0 {
			return model.NutritionTotals{}, fmt.Errorf("grams for %q must be >= 0", sel.Name)
		}
		ing, ok := catalog.ByName(sel.Name)
		if !ok {
			return model.NutritionTotals{}, fmt.Errorf("unknown ingredient %q", sel.Name)
		}
		factor := sel.Grams / 100.0
		totals.Kcal += ing.Kcal * factor
		totals.ProteinG += ing.ProteinG * factor
		totals.FatG += ing.FatG * factor
		totals.CarbsG += ing.CarbsG * factor
	}
	return totals, nil
}
