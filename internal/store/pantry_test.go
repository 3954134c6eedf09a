package store_test

import (
	"testing"

	"github.com/pawplan/pawplan-cli/internal/model"
	"github.com/pawplan/pawplan-cli/internal/store"
)

func TestPantryRoundTrip(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()

	item, err := store.AddPantryItem(db, "salmon")
	if err != nil {
		t.Fatalf("add salmon: %v", err)
	}
	if item.Name != "Salmon (cooked)" || item.Category != model.CategoryMeat {
		t.Fatalf("expected matched salmon meat item, got %+v", item)
	}
	if _, err := store.AddPantryItem(db, "Pumpkin (cooked)"); err != nil {
		t.Fatalf("add pumpkin: %v", err)
	}

	items, err := store.ListPantry(db, "")
	if err != nil {
		t.Fatalf("list pantry: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 pantry items, got %d", len(items))
	}

	meats, err := store.ListPantry(db, model.CategoryMeat)
	if err != nil {
		t.Fatalf("list meats: %v", err)
	}
	if len(meats) != 1 || meats[0].Name != "Salmon (cooked)" {
		t.Fatalf("expected only salmon under Meat, got %+v", meats)
	}

	removed, err := store.RemovePantryItem(db, "salmon")
	if err != nil {
		t.Fatalf("remove salmon: %v", err)
	}
	if removed != "Salmon (cooked)" {
		t.Fatalf("expected removed name Salmon (cooked), got %q", removed)
	}
	items, err = store.ListPantry(db, "")
	if err != nil {
		t.Fatalf("list pantry after remove: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 pantry item after remove, got %d", len(items))
	}
}

func TestPantryRejectsDuplicatesAndUnknowns(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()

	if _, err := store.AddPantryItem(db, "Carrot"); err != nil {
		t.Fatalf("add carrot: %v", err)
	}
	if _, err := store.AddPantryItem(db, "Carrot"); err == nil {
		t.Fatalf("expected duplicate add to fail")
	}
	if _, err := store.AddPantryItem(db, "Tofu"); err == nil {
		t.Fatalf("expected unknown ingredient to fail")
	}
	if _, err := store.RemovePantryItem(db, "Salmon (cooked)"); err == nil {
		t.Fatalf("expected removing absent item to fail")
	}
	if _, err := store.ListPantry(db, "Dairy"); err == nil {
		t.Fatalf("expected unknown category filter to fail")
	}
}

func TestPantryPools(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()

	for _, name := range []string{"Chicken (lean, cooked)", "Turkey (lean, cooked)", "Pumpkin (cooked)", "Brown Rice (cooked)", "Fish Oil", "Blueberries"} {
		if _, err := store.AddPantryItem(db, name); err != nil {
			t.Fatalf("add %s: %v", name, err)
		}
	}

	pools, err := store.PantryPools(db)
	if err != nil {
		t.Fatalf("pantry pools: %v", err)
	}
	if len(pools.Meats) != 2 {
		t.Fatalf("expected 2 meats, got %v", pools.Meats)
	}
	if len(pools.Vegs) != 1 || pools.Vegs[0] != "Pumpkin (cooked)" {
		t.Fatalf("expected pumpkin veg pool, got %v", pools.Vegs)
	}
	if len(pools.Carbs) != 1 || pools.Carbs[0] != "Brown Rice (cooked)" {
		t.Fatalf("expected brown rice carb pool, got %v", pools.Carbs)
	}
}

func TestClearPantry(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()

	for _, name := range []string{"Carrot", "Oats (cooked)"} {
		if _, err := store.AddPantryItem(db, name); err != nil {
			t.Fatalf("add %s: %v", name, err)
		}
	}
	removed, err := store.ClearPantry(db)
	if err != nil {
		t.Fatalf("clear pantry: %v", err)
	}
	if removed != 2 {
		t.Fatalf("expected 2 rows cleared, got %d", removed)
	}
	items, err := store.ListPantry(db, "")
	if err != nil {
		t.Fatalf("list pantry: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected empty pantry, got %d items", len(items))
	}
}
