package catalog

import (
	"fmt"
	"strings"

	"github.com/pawplan/pawplan-cli/internal/model"
)

var ingredients = []model.Ingredient{
	// meats
	{
		Name: "Chicken (lean, cooked)", Category: model.CategoryMeat,
		Kcal: 165, ProteinG: 31, FatG: 3.6, CarbsG: 0,
		Micronote: "B vitamins, selenium.",
		Benefits: []string{
			"High-quality protein for muscle maintenance",
			"Generally well tolerated",
			"Good base protein for rotation diets",
		},
		Cautions: []string{
			"Avoid if chicken allergy suspected",
			"Remove skin to reduce fat if pancreatitis risk",
		},
	},
	{
		Name: "Turkey (lean, cooked)", Category: model.CategoryMeat,
		Kcal: 150, ProteinG: 29, FatG: 2.0, CarbsG: 0,
		Micronote: "Niacin, selenium.",
		Benefits: []string{
			"Lean protein option",
			"Useful for weight-aware plans",
			"Mild flavor for picky dogs",
		},
		Cautions: []string{"Avoid processed/deli products"},
	},
	{
		Name: "Beef (lean, cooked)", Category: model.CategoryMeat,
		Kcal: 200, ProteinG: 26, FatG: 10, CarbsG: 0,
		Micronote: "Iron, zinc, B12.",
		Benefits: []string{
			"Supports red blood cell health",
			"Rich in iron and zinc",
			"Great for active adult dogs",
		},
		Cautions: []string{
			"Higher fat depending on cut",
			"Avoid if beef allergy suspected",
		},
	},
	{
		Name: "Lamb (lean, cooked)", Category: model.CategoryMeat,
		Kcal: 206, ProteinG: 25, FatG: 12, CarbsG: 0,
		Micronote: "Zinc, carnitine.",
		Benefits: []string{
			"Alternative protein for rotation",
			"High palatability",
			"Useful if poultry sensitivity",
		},
		Cautions: []string{"Can be richer; adjust for pancreatitis risk"},
	},
	{
		Name: "Pork (lean, cooked)", Category: model.CategoryMeat,
		Kcal: 195, ProteinG: 27, FatG: 9, CarbsG: 0,
		Micronote: "Thiamine-rich protein.",
		Benefits: []string{
			"Good rotation option",
			"Often highly palatable",
			"Supports energy metabolism",
		},
		Cautions: []string{"Use lean cuts; avoid processed pork"},
	},
	{
		Name: "Duck (lean, cooked)", Category: model.CategoryMeat,
		Kcal: 190, ProteinG: 24, FatG: 11, CarbsG: 0,
		Micronote: "Rich flavor, B vitamins.",
		Benefits: []string{
			"Great for rotation",
			"Useful for dogs bored of poultry",
			"High palatability",
		},
		Cautions: []string{"Moderate fat; manage for pancreatitis risk"},
	},
	{
		Name: "Venison (lean, cooked)", Category: model.CategoryMeat,
		Kcal: 158, ProteinG: 30, FatG: 3.2, CarbsG: 0,
		Micronote: "Often considered novel protein.",
		Benefits: []string{
			"Good for rotation",
			"Potential option for some allergy plans",
			"Lean and nutrient-dense",
		},
		Cautions: []string{"Novel protein strategies should be vet-guided"},
	},
	{
		Name: "Rabbit (cooked)", Category: model.CategoryMeat,
		Kcal: 173, ProteinG: 33, FatG: 3.5, CarbsG: 0,
		Micronote: "Very lean, novel option.",
		Benefits: []string{
			"Lean protein",
			"Rotation diversity",
			"Often well tolerated",
		},
		Cautions: []string{"Ensure sourcing and thorough cooking"},
	},
	{
		Name: "Sardines (cooked, deboned)", Category: model.CategoryMeat,
		Kcal: 208, ProteinG: 25, FatG: 11, CarbsG: 0,
		Micronote: "Omega-3, calcium (if bones removed, less).",
		Benefits: []string{
			"Skin/coat support",
			"High palatability",
			"Good micro-fatty acids",
		},
		Cautions: []string{"Watch sodium if canned; choose no-salt when possible"},
	},
	{
		Name: "Egg (cooked)", Category: model.CategoryMeat,
		Kcal: 155, ProteinG: 13, FatG: 11, CarbsG: 1.1,
		Micronote: "Complete amino acid profile.",
		Benefits: []string{
			"Excellent protein quality",
			"Palatability booster",
			"Good for rotation variety",
		},
		Cautions: []string{"Introduce gradually for sensitive stomachs"},
	},
	{
		Name: "Salmon (cooked)", Category: model.CategoryMeat,
		Kcal: 208, ProteinG: 20, FatG: 13, CarbsG: 0,
		Micronote: "Omega-3, vitamin D.",
		Benefits: []string{
			"Supports skin/coat health",
			"Anti-inflammatory fatty acids",
			"Great for senior/joint-focused plans",
		},
		Cautions: []string{
			"Higher fat; portion carefully",
			"Remove bones; cook thoroughly",
		},
	},
	{
		Name: "White Fish (cod, cooked)", Category: model.CategoryMeat,
		Kcal: 105, ProteinG: 23, FatG: 0.9, CarbsG: 0,
		Micronote: "Very lean protein.",
		Benefits: []string{
			"Great for weight management",
			"Gentle for sensitive stomach",
			"Clean taste",
		},
		Cautions: []string{"Ensure plain cooking"},
	},

	// vegetables
	{
		Name: "Pumpkin (cooked)", Category: model.CategoryVeg,
		Kcal: 26, ProteinG: 1, FatG: 0.1, CarbsG: 6.5,
		Micronote: "Beta-carotene, soluble fiber.",
		Benefits: []string{
			"Supports stool quality",
			"Gentle fiber for GI health",
			"Helpful in transition periods",
		},
		Cautions: []string{"Too much can reduce calorie density"},
	},
	{
		Name: "Carrot (cooked)", Category: model.CategoryVeg,
		Kcal: 35, ProteinG: 0.8, FatG: 0.2, CarbsG: 8,
		Micronote: "Beta-carotene.",
		Benefits: []string{
			"Antioxidant support",
			"Low calorie nutrient boost",
			"Good texture variety",
		},
		Cautions: []string{"Chop/soften for small dogs"},
	},
	{
		Name: "Broccoli (cooked)", Category: model.CategoryVeg,
		Kcal: 34, ProteinG: 2.8, FatG: 0.4, CarbsG: 7,
		Micronote: "Vitamin C, K.",
		Benefits: []string{
			"Antioxidant-rich",
			"Good rotation vegetable",
			"Adds micronutrient diversity",
		},
		Cautions: []string{"Large amounts may cause gas"},
	},
	{
		Name: "Zucchini (cooked)", Category: model.CategoryVeg,
		Kcal: 17, ProteinG: 1.2, FatG: 0.3, CarbsG: 3.1,
		Micronote: "Hydration-friendly veggie.",
		Benefits: []string{
			"Very low calorie",
			"Great for volumizing meals",
			"Mild taste for picky dogs",
		},
		Cautions: []string{"Avoid seasoning"},
	},
	{
		Name: "Green Beans (cooked)", Category: model.CategoryVeg,
		Kcal: 31, ProteinG: 1.8, FatG: 0.1, CarbsG: 7,
		Micronote: "Fiber and low-calorie bulk.",
		Benefits: []string{
			"Helpful for weight management",
			"Gentle fiber",
			"Good texture variety",
		},
	},
	{
		Name: "Sweet Peas (cooked)", Category: model.CategoryVeg,
		Kcal: 84, ProteinG: 5.4, FatG: 0.4, CarbsG: 15.6,
		Micronote: "Plant protein + fiber.",
		Benefits: []string{
			"Adds variety",
			"Good for active dogs in small portions",
		},
		Cautions: []string{"Moderate starch; control for weight plans"},
	},
	{
		Name: "Cauliflower (cooked)", Category: model.CategoryVeg,
		Kcal: 25, ProteinG: 1.9, FatG: 0.3, CarbsG: 5,
		Micronote: "Low-cal cruciferous veggie.",
		Benefits: []string{
			"Adds volume",
			"Rotation-friendly micronutrients",
		},
		Cautions: []string{"May cause gas in some dogs"},
	},
	{
		Name: "Cabbage (cooked, small portions)", Category: model.CategoryVeg,
		Kcal: 23, ProteinG: 1.3, FatG: 0.1, CarbsG: 5.5,
		Micronote: "Fiber, vitamin C.",
		Benefits: []string{
			"Budget-friendly fiber",
			"Adds variety",
		},
		Cautions: []string{"May cause gas; start small"},
	},
	{
		Name: "Kale (cooked, small portions)", Category: model.CategoryVeg,
		Kcal: 35, ProteinG: 2.9, FatG: 1.5, CarbsG: 4.4,
		Micronote: "Dense micronutrient profile.",
		Benefits: []string{
			"Adds antioxidant variety",
			"Good in small rotation amounts",
		},
		Cautions: []string{"Use small portions; some dogs are sensitive"},
	},
	{
		Name: "Cucumber (peeled, small portions)", Category: model.CategoryVeg,
		Kcal: 15, ProteinG: 0.7, FatG: 0.1, CarbsG: 3.6,
		Micronote: "Hydrating low-cal veggie.",
		Benefits: []string{
			"Cooling treat-like veggie",
			"Weight-friendly",
		},
		Cautions: []string{"Chop small for tiny breeds"},
	},
	{
		Name: "Bell Pepper (red, cooked)", Category: model.CategoryVeg,
		Kcal: 31, ProteinG: 1, FatG: 0.3, CarbsG: 6,
		Micronote: "Vitamin-rich color veggie.",
		Benefits: []string{
			"Antioxidant variety",
			"Palatability and color diversity",
		},
		Cautions: []string{"Avoid spicy varieties/seasoning"},
	},
	{
		Name: "Mushroom (common edible, cooked)", Category: model.CategoryVeg,
		Kcal: 22, ProteinG: 3.1, FatG: 0.3, CarbsG: 3.3,
		Micronote: "Umami micro-boost.",
		Benefits: []string{
			"Adds flavor complexity",
			"Small rotation option",
		},
		Cautions: []string{"Only dog-safe edible types; avoid wild mushrooms"},
	},
	{
		Name: "Spinach (cooked, small portions)", Category: model.CategoryVeg,
		Kcal: 23, ProteinG: 2.9, FatG: 0.4, CarbsG: 3.6,
		Micronote: "Folate, magnesium.",
		Benefits: []string{
			"Adds micronutrient variety",
			"Antioxidant support",
		},
		Cautions: []string{"Use small portions due to oxalates"},
	},

	// carbs
	{
		Name: "Sweet Potato (cooked)", Category: model.CategoryCarb,
		Kcal: 86, ProteinG: 1.6, FatG: 0.1, CarbsG: 20,
		Micronote: "Beta-carotene, potassium.",
		Benefits: []string{
			"Energy source with micronutrients",
			"Highly palatable",
			"Good controlled carb",
		},
		Cautions: []string{"Portion for weight control"},
	},
	{
		Name: "Brown Rice (cooked)", Category: model.CategoryCarb,
		Kcal: 123, ProteinG: 2.7, FatG: 1.0, CarbsG: 25.6,
		Micronote: "Gentle starch base.",
		Benefits: []string{
			"Easy-to-digest base",
			"Neutral flavor",
			"Good transition carb",
		},
		Cautions: []string{"Lower carb for diabetic/overweight plans"},
	},
	{
		Name: "White Rice (cooked)", Category: model.CategoryCarb,
		Kcal: 130, ProteinG: 2.4, FatG: 0.3, CarbsG: 28.2,
		Micronote: "Very gentle GI carb.",
		Benefits: []string{
			"Helpful for sensitive stomach phases",
			"Very bland and digestible",
		},
		Cautions: []string{"Lower micronutrients than brown rice"},
	},
	{
		Name: "Oats (cooked)", Category: model.CategoryCarb,
		Kcal: 71, ProteinG: 2.5, FatG: 1.4, CarbsG: 12,
		Micronote: "Soluble fiber (beta-glucans).",
		Benefits: []string{
			"Supports satiety",
			"Gentle energy source",
			"Useful for gut-friendly plans",
		},
		Cautions: []string{"Introduce slowly for sensitive stomachs"},
	},
	{
		Name: "Quinoa (cooked)", Category: model.CategoryCarb,
		Kcal: 120, ProteinG: 4.4, FatG: 1.9, CarbsG: 21.3,
		Micronote: "Higher protein for a carb.",
		Benefits: []string{
			"Good option for variety",
			"Amino acid diversity",
			"Often well tolerated",
		},
		Cautions: []string{"Rinse well before cooking"},
	},
	{
		Name: "Barley (cooked)", Category: model.CategoryCarb,
		Kcal: 123, ProteinG: 2.3, FatG: 0.4, CarbsG: 28,
		Micronote: "Fiber-rich grain.",
		Benefits: []string{
			"Satiety-friendly carb",
			"Good rotation starch",
		},
		Cautions: []string{"Introduce gradually"},
	},
	{
		Name: "Buckwheat (cooked)", Category: model.CategoryCarb,
		Kcal: 92, ProteinG: 3.4, FatG: 0.6, CarbsG: 19.9,
		Micronote: "Alternative pseudo-grain.",
		Benefits: []string{
			"Variety option",
			"Often gentle",
		},
		Cautions: []string{"Cook thoroughly"},
	},
	{
		Name: "Potato (cooked, plain)", Category: model.CategoryCarb,
		Kcal: 87, ProteinG: 2, FatG: 0.1, CarbsG: 20,
		Micronote: "Simple starch.",
		Benefits: []string{
			"Palatable, easy carb",
			"Useful in limited-ingredient plans",
		},
		Cautions: []string{"Never feed raw potato; avoid green parts"},
	},

	// oils
	{
		Name: "Fish Oil (supplemental)", Category: model.CategoryOil,
		Kcal: 900, ProteinG: 0, FatG: 100, CarbsG: 0,
		Micronote: "EPA/DHA omega-3s.",
		Benefits: []string{
			"Skin/coat support",
			"Anti-inflammatory support",
			"May benefit cognitive/joint support",
		},
		Cautions: []string{
			"Dose carefully; can loosen stool",
			"Check with vet if on blood thinners",
		},
	},
	{
		Name: "Olive Oil (small amounts)", Category: model.CategoryOil,
		Kcal: 884, ProteinG: 0, FatG: 100, CarbsG: 0,
		Micronote: "Monounsaturated fats.",
		Benefits: []string{
			"Palatability booster",
			"Helps calorie density for thin dogs",
		},
		Cautions: []string{"Too much fat may trigger GI upset"},
	},
	{
		Name: "MCT Oil (very small amounts)", Category: model.CategoryOil,
		Kcal: 900, ProteinG: 0, FatG: 100, CarbsG: 0,
		Micronote: "Medium-chain triglycerides.",
		Benefits:  []string{"May help some senior cognition plans (vet-guided)"},
		Cautions:  []string{"Can cause diarrhea; use cautiously"},
	},
	{
		Name: "Flaxseed Oil (small amounts)", Category: model.CategoryOil,
		Kcal: 884, ProteinG: 0, FatG: 100, CarbsG: 0,
		Micronote: "ALA omega-3 (plant-based).",
		Benefits: []string{
			"Alternative fatty acid source",
			"Rotation fat option",
		},
		Cautions: []string{"ALA conversion to EPA/DHA is limited"},
	},

	// treats
	{
		Name: "Blueberries (lightly mashed)", Category: model.CategoryTreat,
		Kcal: 57, ProteinG: 0.7, FatG: 0.3, CarbsG: 14.5,
		Micronote: "Antioxidant fruit option.",
		Benefits: []string{
			"Small antioxidant topper",
			"Palatability boost",
		},
		Cautions: []string{"Use small portions to avoid excess sugar"},
	},
	{
		Name: "Apple (peeled, no seeds)", Category: model.CategoryTreat,
		Kcal: 52, ProteinG: 0.3, FatG: 0.2, CarbsG: 14,
		Micronote: "Hydrating sweet crunch.",
		Benefits: []string{
			"Low-cal treat topper",
			"Adds variety",
		},
		Cautions: []string{"Remove seeds/core; use small portions"},
	},
}

var ingredientIndex = make(map[string]model.Ingredient, len(ingredients))

func init() {
	for _, ing := range ingredients {
		ingredientIndex[ing.Name] = ing
	}
}

func All() []model.Ingredient {
	out := make([]model.Ingredient, len(ingredients))
	copy(out, ingredients)
	return out
}

func ByName(name string) (model.Ingredient, bool) {
	ing, ok := ingredientIndex[name]
	return ing, ok
}

func Names(category string) []string {
	var out []string
	for _, ing := range ingredients {
		if category == "" || ing.Category == category {
			out = append(out, ing.Name)
		}
	}
	return out
}

func Categories() []string {
	return []string{
		model.CategoryMeat,
		model.CategoryVeg,
		model.CategoryCarb,
		model.CategoryOil,
		model.CategoryTreat,
	}
}

func IsCategory(category string) bool {
	for _, c := range Categories() {
		if c == category {
			return true
		}
	}
	return false
}

func Match(query string) (model.Ingredient, error) {
	q := strings.TrimSpace(query)
	if q == "" {
		return model.Ingredient{}, fmt.Errorf("ingredient name is required")
	}
	if ing, ok := ingredientIndex[q]; ok {
		return ing, nil
	}

	lower := strings.ToLower(q)
	var matches []model.Ingredient
	for _, ing := range ingredients {
		name := strings.ToLower(ing.Name)
		if name == lower {
			return ing, nil
		}
		if strings.Contains(name, lower) {
			matches = append(matches, ing)
		}
	}
	switch len(matches) {
	case 0:
		return model.Ingredient{}, fmt.Errorf("unknown ingredient %q", query)
	case 1:
		return matches[0], nil
	default:
		names := make([]string, len(matches))
		for i, m := range matches {
			names[i] = m.Name
		}
		return model.Ingredient{}, fmt.Errorf("ambiguous ingredient %q (matches: %s)", query, strings.Join(names, ", "))
	}
}
