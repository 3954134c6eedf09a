package mealplan_test

import (
	"testing"

	"github.com/pawplan/pawplan-cli/internal/catalog"
	"github.com/pawplan/pawplan-cli/internal/mealplan"
	"github.com/pawplan/pawplan-cli/internal/model"
)

func TestGenerateRotationDeterministic(t *testing.T) {
	t.Parallel()
	in := mealplan.RotationInput{
		Mode: model.ModePantry,
		Days: 7,
		Seed: 42,
	}
	first, err := mealplan.GenerateRotation(in)
	if err != nil {
		t.Fatalf("generate rotation: %v", err)
	}
	second, err := mealplan.GenerateRotation(in)
	if err != nil {
		t.Fatalf("generate rotation: %v", err)
	}
	if len(first) != 7 || len(second) != 7 {
		t.Fatalf("expected 7 days, got %d and %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("day %d differs between identical runs: %+v vs %+v", i+1, first[i], second[i])
		}
	}
}

func TestGenerateRotationEmptyPantryFallsBackToCatalog(t *testing.T) {
	t.Parallel()
	days, err := mealplan.GenerateRotation(mealplan.RotationInput{
		Mode: model.ModePantry,
		Days: 10,
		Seed: 7,
	})
	if err != nil {
		t.Fatalf("generate rotation: %v", err)
	}
	for _, day := range days {
		for _, pick := range []struct{ name, category string }{
			{day.Meat, model.CategoryMeat},
			{day.Veg, model.CategoryVeg},
			{day.Carb, model.CategoryCarb},
		} {
			ing, ok := catalog.ByName(pick.name)
			if !ok {
				t.Fatalf("day %d selected unknown ingredient %q", day.Day, pick.name)
			}
			if ing.Category != pick.category {
				t.Fatalf("day %d selected %q as %s", day.Day, pick.name, pick.category)
			}
		}
	}
}

func TestGenerateRotationStaysInsidePantry(t *testing.T) {
	t.Parallel()
	pantry := mealplan.Pantry{
		Meats: []string{"Chicken (lean, cooked)", "Beef (lean, cooked)", "Turkey (lean, cooked)"},
		Vegs:  []string{"Pumpkin (cooked)", "Carrot (cooked)"},
		Carbs: []string{"Oats (cooked)", "Brown Rice (cooked)"},
	}
	days, err := mealplan.GenerateRotation(mealplan.RotationInput{
		Pantry: pantry,
		Mode:   model.ModePantry,
		Days:   20,
		Seed:   42,
	})
	if err != nil {
		t.Fatalf("generate rotation: %v", err)
	}
	for _, day := range days {
		if !contains(pantry.Meats, day.Meat) {
			t.Fatalf("day %d meat %q outside pantry", day.Day, day.Meat)
		}
		if !contains(pantry.Vegs, day.Veg) {
			t.Fatalf("day %d veg %q outside pantry", day.Day, day.Veg)
		}
		if !contains(pantry.Carbs, day.Carb) {
			t.Fatalf("day %d carb %q outside pantry", day.Day, day.Carb)
		}
	}
}

func TestGenerateRotationAvoidsBackToBackRepeats(t *testing.T) {
	t.Parallel()
	days, err := mealplan.GenerateRotation(mealplan.RotationInput{
		Pantry: mealplan.Pantry{
			Meats: []string{"Chicken (lean, cooked)", "Beef (lean, cooked)"},
			Vegs:  []string{"Pumpkin (cooked)", "Carrot (cooked)", "Zucchini (cooked)"},
		},
		Mode: model.ModePantry,
		Days: 60,
		Seed: 11,
	})
	if err != nil {
		t.Fatalf("generate rotation: %v", err)
	}
	for i := 1; i < len(days); i++ {
		if days[i].Meat == days[i-1].Meat {
			t.Fatalf("meat repeated on days %d and %d: %s", days[i-1].Day, days[i].Day, days[i].Meat)
		}
		if days[i].Veg == days[i-1].Veg {
			t.Fatalf("veg repeated on days %d and %d: %s", days[i-1].Day, days[i].Day, days[i].Veg)
		}
	}
}

func TestGenerateRotationSingleItemPantryRepeats(t *testing.T) {
	t.Parallel()
	days, err := mealplan.GenerateRotation(mealplan.RotationInput{
		Pantry: mealplan.Pantry{
			Meats: []string{"Chicken (lean, cooked)"},
		},
		Mode: model.ModePantry,
		Days: 7,
		Seed: 42,
	})
	if err != nil {
		t.Fatalf("generate rotation: %v", err)
	}
	// A one-item pantry repeats every day rather than reaching for
	// meats the caller never stocked.
	for _, day := range days {
		if day.Meat != "Chicken (lean, cooked)" {
			t.Fatalf("day %d meat %q outside the one-item pantry", day.Day, day.Meat)
		}
	}
}

func TestGenerateRotationSmartModeBlendsCatalog(t *testing.T) {
	t.Parallel()
	days, err := mealplan.GenerateRotation(mealplan.RotationInput{
		Pantry: mealplan.Pantry{
			Meats: []string{"Chicken (lean, cooked)"},
		},
		Recommendations: mealplan.Recommend(model.StageAdult, nil),
		Mode:            model.ModeSmart,
		Days:            40,
		Seed:            42,
	})
	if err != nil {
		t.Fatalf("generate rotation: %v", err)
	}
	outside := false
	for _, day := range days {
		if day.Meat != "Chicken (lean, cooked)" {
			outside = true
		}
		if _, ok := catalog.ByName(day.Meat); !ok {
			t.Fatalf("smart mode selected unknown meat %q", day.Meat)
		}
	}
	if !outside {
		t.Fatalf("expected smart mode to reach beyond a one-item pantry over 40 days")
	}
}

func TestGenerateRotationValidation(t *testing.T) {
	t.Parallel()
	if _, err := mealplan.GenerateRotation(mealplan.RotationInput{Days: 0, Seed: 1}); err == nil {
		t.Fatalf("expected error for zero days")
	}
	if _, err := mealplan.GenerateRotation(mealplan.RotationInput{Days: 7, Mode: "chaotic"}); err == nil {
		t.Fatalf("expected error for unknown mode")
	}
	if _, err := mealplan.GenerateRotation(mealplan.RotationInput{
		Days:   7,
		Pantry: mealplan.Pantry{Meats: []string{"Tofu"}},
	}); err == nil {
		t.Fatalf("expected error for unknown pantry ingredient")
	}
	if _, err := mealplan.GenerateRotation(mealplan.RotationInput{
		Days:   7,
		Pantry: mealplan.Pantry{Meats: []string{"Pumpkin (cooked)"}},
	}); err == nil {
		t.Fatalf("expected error for miscategorized pantry ingredient")
	}
}
