package store_test

import (
	"math"
	"testing"

	"github.com/pawplan/pawplan-cli/internal/mealplan"
	"github.com/pawplan/pawplan-cli/internal/model"
	"github.com/pawplan/pawplan-cli/internal/store"
)

func TestTasteEntryRoundTrip(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()

	id, err := store.AddTasteEntry(db, store.AddTasteEntryInput{
		Breed:      "Beagle",
		AgeYears:   3,
		WeightKg:   11,
		Protein:    "chicken",
		Veg:        "pumpkin",
		Preference: model.PreferenceLove,
		Notes:      "licked the bowl clean",
	})
	if err != nil {
		t.Fatalf("add taste entry: %v", err)
	}
	if id <= 0 {
		t.Fatalf("expected positive id, got %d", id)
	}

	entries, err := store.ListTasteEntries(db, 0)
	if err != nil {
		t.Fatalf("list taste entries: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	entry := entries[0]
	if entry.Protein != "Chicken (lean, cooked)" || entry.Veg != "Pumpkin (cooked)" {
		t.Fatalf("expected canonical ingredient names, got %+v", entry)
	}
	if entry.Preference != model.PreferenceLove || entry.Notes != "licked the bowl clean" {
		t.Fatalf("unexpected entry contents: %+v", entry)
	}

	if err := store.DeleteTasteEntry(db, id); err != nil {
		t.Fatalf("delete taste entry: %v", err)
	}
	if err := store.DeleteTasteEntry(db, id); err == nil {
		t.Fatalf("expected second delete to fail")
	}
}

func TestTasteEntryValidation(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()

	if _, err := store.AddTasteEntry(db, store.AddTasteEntryInput{Protein: "chicken", Preference: "Obsessed"}); err == nil {
		t.Fatalf("expected unknown preference level to fail")
	}
	if _, err := store.AddTasteEntry(db, store.AddTasteEntryInput{Protein: "Tofu", Preference: model.PreferenceLike}); err == nil {
		t.Fatalf("expected unknown protein to fail")
	}
	if _, err := store.AddTasteEntry(db, store.AddTasteEntryInput{Protein: "pumpkin", Preference: model.PreferenceLike}); err == nil {
		t.Fatalf("expected veg offered as protein to fail")
	}
	if _, err := store.AddTasteEntry(db, store.AddTasteEntryInput{Preference: model.PreferenceLike}); err == nil {
		t.Fatalf("expected entry without protein or veg to fail")
	}
}

func TestRankTaste(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()

	add := func(protein, preference string) {
		t.Helper()
		if _, err := store.AddTasteEntry(db, store.AddTasteEntryInput{Protein: protein, Preference: preference}); err != nil {
			t.Fatalf("add %s/%s: %v", protein, preference, err)
		}
	}
	add("chicken", model.PreferenceLove)
	add("chicken", model.PreferenceLike)
	add("beef", model.PreferenceDislike)

	ranks, err := store.RankTaste(db, mealplan.RankByProtein)
	if err != nil {
		t.Fatalf("rank taste: %v", err)
	}
	if len(ranks) != 2 {
		t.Fatalf("expected 2 ranked proteins, got %d", len(ranks))
	}
	if ranks[0].Name != "Chicken (lean, cooked)" || math.Abs(ranks[0].Score-2.5) > 0.0001 {
		t.Fatalf("expected chicken at 2.5, got %s at %.2f", ranks[0].Name, ranks[0].Score)
	}
	if ranks[1].Name != "Beef (lean, cooked)" || ranks[1].Score != 0 {
		t.Fatalf("expected beef at 0.0, got %s at %.2f", ranks[1].Name, ranks[1].Score)
	}

	if _, err := store.RankTaste(db, "carb"); err == nil {
		t.Fatalf("expected unknown ranking field to fail")
	}
}
