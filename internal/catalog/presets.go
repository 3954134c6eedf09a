package catalog

import (
	"fmt"

	"github.com/pawplan/pawplan-cli/internal/model"
)

var presets = []model.RatioPreset{
	{
		Key: "balanced", Label: "Balanced Cooked Fresh (default)",
		MeatPct: 50, VegPct: 35, CarbPct: 15,
		Note: "A practical cooked-fresh ratio emphasizing lean protein and diverse vegetables.",
	},
	{
		Key: "weight", Label: "Weight-Aware & Satiety",
		MeatPct: 45, VegPct: 45, CarbPct: 10,
		Note: "Higher vegetable volume and slightly reduced energy density.",
	},
	{
		Key: "active", Label: "Active Adult Energy",
		MeatPct: 55, VegPct: 25, CarbPct: 20,
		Note: "More energy support for high activity while keeping vegetables present.",
	},
	{
		Key: "senior", Label: "Senior Gentle Balance",
		MeatPct: 48, VegPct: 40, CarbPct: 12,
		Note: "Fiber and micronutrient focus, moderate carbs.",
	},
	{
		Key: "puppy", Label: "Puppy Growth (cooked baseline)",
		MeatPct: 55, VegPct: 30, CarbPct: 15,
		Note: "Growth needs are complex; ensure calcium/vitamin balance with veterinary guidance.",
	},
	{
		Key: "gentle_gi", Label: "Gentle GI Rotation",
		MeatPct: 50, VegPct: 40, CarbPct: 10,
		Note: "A calmer profile leaning on easy proteins + soothing fiber veggies.",
	},
}

func Presets() []model.RatioPreset {
	out := make([]model.RatioPreset, len(presets))
	copy(out, presets)
	return out
}

func PresetByKey(key string) (model.RatioPreset, error) {
	for _, p := range presets {
		if p.Key == key {
			return p, nil
		}
	}
	return model.RatioPreset{}, fmt.Errorf("unknown ratio preset %q", key)
}

func DefaultPresetKey() string {
	return "balanced"
}
