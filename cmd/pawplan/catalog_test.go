package pawplan

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestIngredientsListFiltersByCategory(t *testing.T) {
	out := runCommand(t, "ingredients", "list", "--category", "Carb")
	if !strings.Contains(out, "Brown Rice (cooked)\tCarb") {
		t.Fatalf("missing carb row:\n%s", out)
	}
	if strings.Contains(out, "\tMeat\t") {
		t.Fatalf("unexpected meat row:\n%s", out)
	}

	runCommandExpectError(t, "ingredients", "list", "--category", "Fish")
}

func TestIngredientsShowFuzzyMatch(t *testing.T) {
	out := runCommand(t, "ingredients", "show", "chicken")
	if !strings.Contains(out, "Name: Chicken (lean, cooked)") {
		t.Fatalf("fuzzy match failed:\n%s", out)
	}
	if !strings.Contains(out, "Category: Meat") {
		t.Fatalf("missing category:\n%s", out)
	}
}

func TestRatioPresetsSumTo100(t *testing.T) {
	out := runCommand(t, "ratio", "presets", "--json")
	var presets []struct {
		Key     string
		MeatPct int
		VegPct  int
		CarbPct int
	}
	if err := json.Unmarshal([]byte(out), &presets); err != nil {
		t.Fatalf("decode presets: %v\n%s", err, out)
	}
	if len(presets) != 6 {
		t.Fatalf("expected 6 presets, got %d", len(presets))
	}
	for _, p := range presets {
		if sum := p.MeatPct + p.VegPct + p.CarbPct; sum != 100 {
			t.Fatalf("preset %s sums to %d", p.Key, sum)
		}
	}
}

func TestRatioNormalizeCommand(t *testing.T) {
	out := runCommand(t, "ratio", "normalize", "60", "60", "60")
	if !strings.Contains(out, "Meat: 33%") || !strings.Contains(out, "Veg: 33%") || !strings.Contains(out, "Carb: 34%") {
		t.Fatalf("unexpected normalization:\n%s", out)
	}

	runCommandExpectError(t, "ratio", "normalize", "60", "x", "60")
}

func TestRecommendCommandForSenior(t *testing.T) {
	out := runCommand(t, "recommend", "--weight", "9", "--age", "9")
	if !strings.Contains(out, "White Fish (cod, cooked)") {
		t.Fatalf("senior recommendation missing white fish:\n%s", out)
	}
	if !strings.Contains(out, "Barley (cooked)") {
		t.Fatalf("senior recommendation missing barley:\n%s", out)
	}
}

func TestSupplementsSuggest(t *testing.T) {
	out := runCommand(t, "supplements", "suggest", "--focus", "Gut")
	if !strings.Contains(out, "Probiotics") || !strings.Contains(out, "Prebiotic Fiber") {
		t.Fatalf("unexpected gut suggestions:\n%s", out)
	}

	runCommandExpectError(t, "supplements", "suggest", "--focus", "Astrology")
	runCommandExpectError(t, "supplements", "suggest")
}

func TestBreedsSize(t *testing.T) {
	out := runCommand(t, "breeds", "size", "Chihuahua")
	if !strings.Contains(out, "Toy/Small") {
		t.Fatalf("unexpected size class:\n%s", out)
	}
	out = runCommand(t, "breeds", "size", "Direwolf")
	if !strings.Contains(out, "Unknown") {
		t.Fatalf("unknown breed should map to Unknown:\n%s", out)
	}
}
