package catalog_test

import (
	"strings"
	"testing"

	"github.com/pawplan/pawplan-cli/internal/catalog"
	"github.com/pawplan/pawplan-cli/internal/model"
)

func TestCatalogShape(t *testing.T) {
	t.Parallel()
	counts := map[string]int{}
	seen := map[string]bool{}
	for _, ing := range catalog.All() {
		if seen[ing.Name] {
			t.Fatalf("duplicate ingredient name %q", ing.Name)
		}
		seen[ing.Name] = true
		if !catalog.IsCategory(ing.Category) {
			t.Fatalf("ingredient %q has invalid category %q", ing.Name, ing.Category)
		}
		if ing.Kcal <= 0 {
			t.Fatalf("ingredient %q has non-positive kcal", ing.Name)
		}
		if len(ing.Benefits) == 0 {
			t.Fatalf("ingredient %q has no benefits listed", ing.Name)
		}
		counts[ing.Category]++
	}

	want := map[string]int{
		model.CategoryMeat:  12,
		model.CategoryVeg:   13,
		model.CategoryCarb:  8,
		model.CategoryOil:   4,
		model.CategoryTreat: 2,
	}
	for cat, n := range want {
		if counts[cat] != n {
			t.Fatalf("expected %d %s ingredients, got %d", n, cat, counts[cat])
		}
	}
}

func TestByName(t *testing.T) {
	t.Parallel()
	ing, ok := catalog.ByName("Salmon (cooked)")
	if !ok {
		t.Fatalf("expected salmon in catalog")
	}
	if ing.Category != model.CategoryMeat {
		t.Fatalf("expected salmon category Meat, got %s", ing.Category)
	}
	if ing.Kcal != 208 {
		t.Fatalf("expected salmon kcal 208, got %.1f", ing.Kcal)
	}
	if _, ok := catalog.ByName("Chocolate"); ok {
		t.Fatalf("expected chocolate to be absent")
	}
}

func TestNamesByCategory(t *testing.T) {
	t.Parallel()
	meats := catalog.Names(model.CategoryMeat)
	if len(meats) != 12 {
		t.Fatalf("expected 12 meats, got %d", len(meats))
	}
	for _, name := range meats {
		ing, ok := catalog.ByName(name)
		if !ok || ing.Category != model.CategoryMeat {
			t.Fatalf("meat listing returned non-meat %q", name)
		}
	}
	if got := len(catalog.Names("")); got != len(catalog.All()) {
		t.Fatalf("expected all names for empty category, got %d", got)
	}
}

func TestMatch(t *testing.T) {
	t.Parallel()
	ing, err := catalog.Match("salmon")
	if err != nil {
		t.Fatalf("match salmon: %v", err)
	}
	if ing.Name != "Salmon (cooked)" {
		t.Fatalf("expected salmon match, got %q", ing.Name)
	}

	if _, err := catalog.Match("rice"); err == nil {
		t.Fatalf("expected ambiguous match error for rice")
	} else if !strings.Contains(err.Error(), "ambiguous") {
		t.Fatalf("expected ambiguous error, got %v", err)
	}

	if _, err := catalog.Match("tofu"); err == nil {
		t.Fatalf("expected unknown ingredient error")
	}
}

func TestPresets(t *testing.T) {
	t.Parallel()
	presets := catalog.Presets()
	if len(presets) != 6 {
		t.Fatalf("expected 6 presets, got %d", len(presets))
	}
	for _, p := range presets {
		if sum := p.MeatPct + p.VegPct + p.CarbPct; sum != 100 {
			t.Fatalf("preset %s sums to %d, expected 100", p.Key, sum)
		}
	}

	p, err := catalog.PresetByKey("balanced")
	if err != nil {
		t.Fatalf("lookup balanced preset: %v", err)
	}
	if p.MeatPct != 50 || p.VegPct != 35 || p.CarbPct != 15 {
		t.Fatalf("unexpected balanced ratios: %d/%d/%d", p.MeatPct, p.VegPct, p.CarbPct)
	}
	if _, err := catalog.PresetByKey("keto"); err == nil {
		t.Fatalf("expected unknown preset error")
	}
}

func TestSuggestSupplements(t *testing.T) {
	t.Parallel()
	got := catalog.SuggestSupplements([]string{catalog.FocusGut})
	want := []string{"Probiotics", "Prebiotic Fiber (e.g., inulin, MOS)"}
	if len(got) != len(want) {
		t.Fatalf("expected %d suggestions, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected suggestion %q at %d, got %q", want[i], i, got[i])
		}
	}
}

func TestSuggestSupplementsDeduplicates(t *testing.T) {
	t.Parallel()
	got := catalog.SuggestSupplements([]string{catalog.FocusSkinCoat, catalog.FocusSenior})
	count := 0
	for _, name := range got {
		if name == "Omega-3 (Fish Oil)" {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("expected omega-3 once, got %d occurrences", count)
	}
}

func TestSuggestSupplementsEmpty(t *testing.T) {
	t.Parallel()
	if got := catalog.SuggestSupplements(nil); len(got) != 0 {
		t.Fatalf("expected no suggestions without focuses, got %v", got)
	}
}

func TestSizeClass(t *testing.T) {
	t.Parallel()
	if got := catalog.SizeClass("Great Dane"); got != catalog.SizeLargeGiant {
		t.Fatalf("expected Large/Giant for Great Dane, got %s", got)
	}
	if got := catalog.SizeClass("Beagle"); got != catalog.SizeMedium {
		t.Fatalf("expected Medium for Beagle, got %s", got)
	}
	if got := catalog.SizeClass("Borzoi"); got != catalog.SizeUnknown {
		t.Fatalf("expected Unknown for Borzoi, got %s", got)
	}
	if got := catalog.SizeClass("Space Corgi"); got != catalog.SizeUnknown {
		t.Fatalf("expected Unknown for unlisted breed, got %s", got)
	}
}

func TestBreedsIncludeCatchAll(t *testing.T) {
	t.Parallel()
	found := false
	for _, b := range catalog.Breeds() {
		if b == catalog.DefaultBreed {
			found = true
			break
		}
	}
	if !found {
		t.Fatalf("expected breed list to include %q", catalog.DefaultBreed)
	}
}
