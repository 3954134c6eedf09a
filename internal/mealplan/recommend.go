package mealplan

import (
	"github.com/pawplan/pawplan-cli/internal/catalog"
	"github.com/pawplan/pawplan-cli/internal/model"
)

var baseRecommendations = model.Recommendations{
	Meats: []string{
		"Chicken (lean, cooked)",
		"Turkey (lean, cooked)",
		"Beef (lean, cooked)",
		"Lamb (lean, cooked)",
		"Duck (lean, cooked)",
		"Egg (cooked)",
	},
	Vegs: []string{
		"Pumpkin (cooked)",
		"Carrot (cooked)",
		"Zucchini (cooked)",
		"Green Beans (cooked)",
		"Broccoli (cooked)",
	},
	Carbs: []string{
		"Sweet Potato (cooked)",
		"Brown Rice (cooked)",
		"Oats (cooked)",
		"Potato (cooked, plain)",
	},
	Treats: []string{
		"Blueberries (lightly mashed)",
		"Apple (peeled, no seeds)",
	},
}

var stageRecommendations = map[string]model.Recommendations{
	model.StagePuppy: {
		Meats: []string{"Salmon (cooked)"},
		Carbs: []string{"White Rice (cooked)"},
	},
	model.StageSenior: {
		Meats: []string{"White Fish (cod, cooked)", "Sardines (cooked, deboned)"},
		Carbs: []string{"Barley (cooked)"},
	},
}

type recommendRule struct {
	flag   string
	add    model.Recommendations
	remove model.Recommendations
}

// Removals run before additions within a rule, so a rule can swap a
// rich ingredient for a leaner stand-in.
var recommendRules = []recommendRule{
	{
		flag: model.FlagSensitive,
		add: model.Recommendations{
			Meats: []string{"White Fish (cod, cooked)"},
			Vegs:  []string{"Pumpkin (cooked)"},
			Carbs: []string{"White Rice (cooked)", "Oats (cooked)"},
		},
	},
	{
		flag: model.FlagSkinCoat,
		add: model.Recommendations{
			Meats: []string{"Salmon (cooked)", "Sardines (cooked, deboned)"},
		},
	},
	{
		flag: model.FlagWeightLoss,
		add: model.Recommendations{
			Meats: []string{"White Fish (cod, cooked)", "Turkey (lean, cooked)", "Rabbit (cooked)"},
			Vegs:  []string{"Cucumber (peeled, small portions)", "Cauliflower (cooked)"},
		},
		remove: model.Recommendations{
			Carbs: []string{"Potato (cooked, plain)"},
		},
	},
	{
		flag: model.FlagLowFat,
		add: model.Recommendations{
			Meats: []string{"White Fish (cod, cooked)", "Turkey (lean, cooked)", "Rabbit (cooked)"},
		},
		remove: model.Recommendations{
			Meats: []string{
				"Salmon (cooked)",
				"Sardines (cooked, deboned)",
				"Lamb (lean, cooked)",
				"Duck (lean, cooked)",
			},
		},
	},
}

func Recommend(stage string, flags []string) model.Recommendations {
	meats := append([]string(nil), baseRecommendations.Meats...)
	vegs := append([]string(nil), baseRecommendations.Vegs...)
	carbs := append([]string(nil), baseRecommendations.Carbs...)
	treats := append([]string(nil), baseRecommendations.Treats...)

	if delta, ok := stageRecommendations[stage]; ok {
		meats = appendMissing(meats, delta.Meats)
		vegs = appendMissing(vegs, delta.Vegs)
		carbs = appendMissing(carbs, delta.Carbs)
		treats = appendMissing(treats, delta.Treats)
	}

	active := activeFlags(flags)
	for _, rule := range recommendRules {
		if !active[rule.flag] {
			continue
		}
		meats = removeAll(meats, rule.remove.Meats)
		vegs = removeAll(vegs, rule.remove.Vegs)
		carbs = removeAll(carbs, rule.remove.Carbs)
		treats = removeAll(treats, rule.remove.Treats)

		meats = appendMissing(meats, rule.add.Meats)
		vegs = appendMissing(vegs, rule.add.Vegs)
		carbs = appendMissing(carbs, rule.add.Carbs)
		treats = appendMissing(treats, rule.add.Treats)
	}

	return model.Recommendations{
		Meats:  keepCatalogNames(meats),
		Vegs:   keepCatalogNames(vegs),
		Carbs:  keepCatalogNames(carbs),
		Treats: keepCatalogNames(treats),
	}
}

func RecommendForProfile(profile model.Profile) model.Recommendations {
	return Recommend(StageForAge(profile.AgeYears), profile.Flags)
}

func appendMissing(list []string, items []string) []string {
	for _, item := range items {
		found := false
		for _, have := range list {
			if have == item {
				found = true
				break
			}
		}
		if !found {
			list = append(list, item)
		}
	}
	return list
}

func removeAll(list []string, items []string) []string {
	if len(items) == 0 {
		return list
	}
	drop := make(map[string]bool, len(items))
	for _, item := range items {
		drop[item] = true
	}
	out := list[:0]
	for _, have := range list {
		if !drop[have] {
			out = append(out, have)
		}
	}
	return out
}

func keepCatalogNames(list []string) []string {
	var out []string
	seen := make(map[string]bool, len(list))
	for _, name := range list {
		if seen[name] {
			continue
		}
		if _, ok := catalog.ByName(name); !ok {
			continue
		}
		seen[name] = true
		out = append(out, name)
	}
	return out
}
