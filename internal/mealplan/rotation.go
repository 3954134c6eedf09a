package mealplan

import (
	"fmt"
	"math/rand"

	"github.com/pawplan/pawplan-cli/internal/catalog"
	"github.com/pawplan/pawplan-cli/internal/model"
)

const (
	DefaultSeed = 42
	DefaultDays = 7
)

type Pantry struct {
	Meats []string
	Vegs  []string
	Carbs []string
}

func (p Pantry) Empty() bool {
	return len(p.Meats) == 0 && len(p.Vegs) == 0 && len(p.Carbs) == 0
}

type RotationInput struct {
	Pantry          Pantry
	Recommendations model.Recommendations
	Mode            string
	Days            int
	Seed            int64
}

func GenerateRotation(in RotationInput) ([]model.DaySelection, error) {
	if in.Days <= 0 {
		return nil, fmt.Errorf("days must be > 0")
	}
	mode := in.Mode
	if mode == "" {
		mode = model.ModePantry
	}
	if mode != model.ModePantry && mode != model.ModeSmart {
		return nil, fmt.Errorf("unknown rotation mode %q", in.Mode)
	}

	if err := validateNames(in.Pantry.Meats, model.CategoryMeat); err != nil {
		return nil, err
	}
	if err := validateNames(in.Pantry.Vegs, model.CategoryVeg); err != nil {
		return nil, err
	}
	if err := validateNames(in.Pantry.Carbs, model.CategoryCarb); err != nil {
		return nil, err
	}
	if err := validateNames(in.Recommendations.Meats, model.CategoryMeat); err != nil {
		return nil, err
	}
	if err := validateNames(in.Recommendations.Vegs, model.CategoryVeg); err != nil {
		return nil, err
	}
	if err := validateNames(in.Recommendations.Carbs, model.CategoryCarb); err != nil {
		return nil, err
	}

	allMeats := catalog.Names(model.CategoryMeat)
	allVegs := catalog.Names(model.CategoryVeg)
	allCarbs := catalog.Names(model.CategoryCarb)

	meatPool := buildPool(mode, in.Pantry.Meats, in.Recommendations.Meats, allMeats)
	vegPool := buildPool(mode, in.Pantry.Vegs, in.Recommendations.Vegs, allVegs)
	carbPool := buildPool(mode, in.Pantry.Carbs, in.Recommendations.Carbs, allCarbs)

	rng := rand.New(rand.NewSource(in.Seed))

	var lastMeat, lastVeg string
	out := make([]model.DaySelection, 0, in.Days)
	for day := 1; day <= in.Days; day++ {
		meat := chooseAvoiding(rng, meatPool, lastMeat)
		veg := chooseAvoiding(rng, vegPool, lastVeg)
		carb := choose(rng, carbPool)

		lastMeat, lastVeg = meat, veg
		out = append(out, model.DaySelection{Day: day, Meat: meat, Veg: veg, Carb: carb})
	}
	return out, nil
}

func buildPool(mode string, pantry, recommended, all []string) []string {
	if mode == model.ModePantry {
		if len(pantry) == 0 {
			return all
		}
		return dedupe(pantry)
	}

	pool := make([]string, 0, len(all))
	pool = append(pool, pantry...)
	pool = append(pool, recommended...)
	pool = append(pool, all...)
	return dedupe(pool)
}

func choose(rng *rand.Rand, pool []string) string {
	return pool[rng.Intn(len(pool))]
}

// chooseAvoiding skips the previous pick whenever the pool leaves room.
// A singleton pool simply repeats: the pool is the caller's contract
// (pantry-only runs must never escape it), so a repeat wins over
// picking outside the pool.
func chooseAvoiding(rng *rand.Rand, pool []string, last string) string {
	if last == "" {
		return choose(rng, pool)
	}
	if filtered := without(pool, last); len(filtered) > 0 {
		return choose(rng, filtered)
	}
	return choose(rng, pool)
}

func without(pool []string, name string) []string {
	var out []string
	for _, have := range pool {
		if have != name {
			out = append(out, have)
		}
	}
	return out
}

func dedupe(list []string) []string {
	out := make([]string, 0, len(list))
	seen := make(map[string]bool, len(list))
	for _, name := range list {
		if seen[name] {
			continue
		}
		seen[name] = true
		out = append(out, name)
	}
	return out
}

func validateNames(names []string, category string) error {
	for _, name := range names {
		ing, ok := catalog.ByName(name)
		if !ok {
			return fmt.Errorf("unknown ingredient %q", name)
		}
		if ing.Category != category {
			return fmt.Errorf("ingredient %q is %s, not %s", name, ing.Category, category)
		}
	}
	return nil
}
