package store_test

import (
	"testing"

	"github.com/pawplan/pawplan-cli/internal/mealplan"
	"github.com/pawplan/pawplan-cli/internal/model"
	"github.com/pawplan/pawplan-cli/internal/store"
)

func buildTestPlan(t *testing.T) (mealplan.PlanInput, mealplan.PlanResult) {
	t.Helper()
	in := mealplan.PlanInput{
		Profile: model.Profile{
			Breed:    "Beagle",
			AgeYears: 3,
			WeightKg: 10,
			Activity: model.ActivityNormal,
			Neutered: true,
		},
		MeatPct:     50,
		VegPct:      35,
		CarbPct:     15,
		KcalPerGram: 1.35,
		Mode:        model.ModeSmart,
		Days:        3,
		Seed:        42,
	}
	result, err := mealplan.BuildPlan(in)
	if err != nil {
		t.Fatalf("build plan: %v", err)
	}
	return in, result
}

func TestPlanSaveAndGet(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()

	in, result := buildTestPlan(t)
	saved, err := store.SavePlan(db, in, result)
	if err != nil {
		t.Fatalf("save plan: %v", err)
	}
	if saved.Token == "" {
		t.Fatalf("expected a token")
	}
	if saved.Breed != "Beagle" || saved.Days != 3 || saved.Seed != 42 {
		t.Fatalf("unexpected saved plan: %+v", saved)
	}

	byPrefix, err := store.GetPlan(db, saved.Token[:8])
	if err != nil {
		t.Fatalf("get plan by prefix: %v", err)
	}
	if byPrefix.ID != saved.ID {
		t.Fatalf("prefix resolved wrong plan: %+v", byPrefix)
	}

	days, err := store.PlanDays(db, saved.ID)
	if err != nil {
		t.Fatalf("plan days: %v", err)
	}
	if len(days) != 3 {
		t.Fatalf("expected 3 day rows, got %d", len(days))
	}
	for i, day := range days {
		if day.Day != i+1 {
			t.Fatalf("day rows out of order: %+v", days)
		}
		if day.Meat != result.Days[i].Meat || day.Carb != result.Days[i].Carb {
			t.Fatalf("day %d does not match generated plan", i+1)
		}
	}
}

func TestPlanListAndDelete(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()

	in, result := buildTestPlan(t)
	first, err := store.SavePlan(db, in, result)
	if err != nil {
		t.Fatalf("save first plan: %v", err)
	}
	if _, err := store.SavePlan(db, in, result); err != nil {
		t.Fatalf("save second plan: %v", err)
	}

	plans, err := store.ListPlans(db, 10)
	if err != nil {
		t.Fatalf("list plans: %v", err)
	}
	if len(plans) != 2 {
		t.Fatalf("expected 2 plans, got %d", len(plans))
	}

	token, err := store.DeletePlan(db, first.Token)
	if err != nil {
		t.Fatalf("delete plan: %v", err)
	}
	if token != first.Token {
		t.Fatalf("deleted token = %q, want %q", token, first.Token)
	}
	if _, err := store.GetPlan(db, first.Token); err == nil {
		t.Fatalf("expected deleted plan to be gone")
	}
	if _, err := store.DeletePlan(db, first.Token); err == nil {
		t.Fatalf("expected deleting a missing plan to fail")
	}
}

func TestGetPlanAmbiguousPrefix(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()

	in, result := buildTestPlan(t)
	if _, err := store.SavePlan(db, in, result); err != nil {
		t.Fatalf("save plan: %v", err)
	}
	if _, err := store.SavePlan(db, in, result); err != nil {
		t.Fatalf("save plan: %v", err)
	}
	// Every UUID shares the empty prefix: "" must not resolve.
	if _, err := store.GetPlan(db, ""); err == nil {
		t.Fatalf("expected empty token to fail")
	}
}
