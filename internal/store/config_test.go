package store_test

import (
	"testing"

	"github.com/pawplan/pawplan-cli/internal/mealplan"
	"github.com/pawplan/pawplan-cli/internal/store"
)

func TestConfigRoundTrip(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()

	if err := store.SetConfig(db, "kcal_per_gram", "1.5"); err != nil {
		t.Fatalf("set kcal_per_gram: %v", err)
	}
	if err := store.SetConfig(db, "kcal_per_gram", "1.6"); err != nil {
		t.Fatalf("update kcal_per_gram: %v", err)
	}
	value, found, err := store.GetConfig(db, "kcal_per_gram")
	if err != nil {
		t.Fatalf("get config: %v", err)
	}
	if !found || value != "1.6" {
		t.Fatalf("got %q (found=%v), want 1.6", value, found)
	}

	// Migrations seed default_preset, kcal_per_gram, and plan_days.
	all, err := store.ListConfig(db)
	if err != nil {
		t.Fatalf("list config: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 config rows, got %d", len(all))
	}
	if all["kcal_per_gram"] != "1.6" {
		t.Fatalf("kcal_per_gram = %q", all["kcal_per_gram"])
	}
}

func TestConfigValidation(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()

	cases := [][2]string{
		{"default_preset", "keto"},
		{"kcal_per_gram", "zero"},
		{"kcal_per_gram", "-1"},
		{"plan_days", "1.5"},
		{"plan_days", "0"},
		{"", "anything"},
	}
	for _, c := range cases {
		if err := store.SetConfig(db, c[0], c[1]); err == nil {
			t.Fatalf("expected set %q=%q to fail", c[0], c[1])
		}
	}
}

func TestConfigDefaults(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()

	preset, err := store.DefaultPreset(db)
	if err != nil {
		t.Fatalf("default preset: %v", err)
	}
	if preset != "balanced" {
		t.Fatalf("default preset = %q", preset)
	}

	kcalPerGram, err := store.KcalPerGram(db)
	if err != nil {
		t.Fatalf("kcal per gram default: %v", err)
	}
	if kcalPerGram != mealplan.DefaultKcalPerGram {
		t.Fatalf("kcal per gram = %v", kcalPerGram)
	}

	if err := store.SetConfig(db, "plan_days", "10"); err != nil {
		t.Fatalf("set plan_days: %v", err)
	}
	days, err := store.PlanDaysDefault(db)
	if err != nil {
		t.Fatalf("plan days default: %v", err)
	}
	if days != 10 {
		t.Fatalf("plan days = %d", days)
	}
}
