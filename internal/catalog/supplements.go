package catalog

import "github.com/pawplan/pawplan-cli/internal/model"

const (
	FocusSkinCoat = "Skin/Coat"
	FocusGut      = "Gut"
	FocusJoint    = "Joint/Mobility"
	FocusPuppy    = "Puppy Growth Support"
	FocusSenior   = "Senior Vitality"
	FocusWeight   = "Weight Management"
	FocusDental   = "Dental Support"
	FocusUrinary  = "Urinary Focus"
)

var supplements = []model.Supplement{
	{
		Name:     "Omega-3 (Fish Oil)",
		Why:      "Supports skin/coat, joint comfort, and inflammatory balance.",
		BestFor:  []string{"Dry/itchy skin", "Senior dogs", "Joint support plans"},
		Cautions: "Dose carefully; may loosen stool. Check with vet if on medications affecting clotting.",
		Pairing:  "Pairs well with lean proteins and antioxidant-rich vegetables.",
	},
	{
		Name:     "Probiotics",
		Why:      "May improve gut resilience and stool stability.",
		BestFor:  []string{"Sensitive stomach", "Diet transitions", "Stress-related GI changes"},
		Cautions: "Choose canine-specific or veterinary-formulated options.",
		Pairing:  "Works nicely with pumpkin, oats, and gentle proteins.",
	},
	{
		Name:     "Prebiotic Fiber (e.g., inulin, MOS)",
		Why:      "Feeds beneficial gut bacteria and may support stool quality.",
		BestFor:  []string{"Soft stools", "Post-antibiotic recovery (vet guided)"},
		Cautions: "Too much can cause gas.",
		Pairing:  "Combine with probiotics for a gentle synbiotic approach.",
	},
	{
		Name:     "Calcium Support (for home-cooked)",
		Why:      "Home-cooked diets often need calcium balancing.",
		BestFor:  []string{"Puppies", "Long-term cooked fresh routines"},
		Cautions: "Over/under supplementation can be risky; confirm with a vet nutritionist.",
		Pairing:  "Essential when not using balanced commercial bases.",
	},
	{
		Name:     "Canine Multivitamin",
		Why:      "Helps cover micronutrient gaps in simplified home recipes.",
		BestFor:  []string{"Limited ingredient variety", "Long-term home cooking"},
		Cautions: "Avoid human multivitamins unless a vet approves.",
		Pairing:  "Best used with rotation-based weekly menus.",
	},
	{
		Name:     "Joint Support (Glucosamine/Chondroitin/UC-II)",
		Why:      "May support mobility and cartilage health.",
		BestFor:  []string{"Large breeds", "Senior dogs", "Highly active dogs"},
		Cautions: "Effects vary and usually take time.",
		Pairing:  "Pairs with omega-3 and weight control.",
	},
	{
		Name:     "Vitamin E (as guided)",
		Why:      "Antioxidant support, often paired with higher fat/omega supplementation.",
		BestFor:  []string{"Dogs receiving omega-3 long-term"},
		Cautions: "Avoid excessive dosing without guidance.",
		Pairing:  "Consider when fish oil is used regularly.",
	},
	{
		Name:     "Zinc Support (vet-guided)",
		Why:      "May support skin barrier and coat quality.",
		BestFor:  []string{"Specific deficiency concerns", "Some dermatology plans"},
		Cautions: "Too much can be harmful; use only with professional guidance.",
		Pairing:  "Works alongside balanced protein variety.",
	},
	{
		Name:     "Dental Additives (enzymatic or vet-approved)",
		Why:      "Helps reduce plaque in dogs that resist brushing.",
		BestFor:  []string{"Small breeds prone to dental issues"},
		Cautions: "Not a replacement for brushing.",
		Pairing:  "Pairs with crunchy safe veggie textures when appropriate.",
	},
	{
		Name:     "L-Carnitine (vet-guided)",
		Why:      "May assist certain weight management or cardiac support strategies.",
		BestFor:  []string{"Vet-supervised weight plans"},
		Cautions: "Use under professional advice.",
		Pairing:  "Best with lean proteins and higher vegetable ratios.",
	},
	{
		Name:     "Urinary Support (condition-specific)",
		Why:      "Some dogs need tailored mineral/pH strategies.",
		BestFor:  []string{"Vet-diagnosed urinary issues"},
		Cautions: "Dietary mineral balancing is medical; vet required.",
		Pairing:  "Consider hydration-rich meal design.",
	},
}

var focusSuggestions = []struct {
	focus string
	names []string
}{
	{FocusSkinCoat, []string{"Omega-3 (Fish Oil)", "Vitamin E (as guided)", "Zinc Support (vet-guided)"}},
	{FocusGut, []string{"Probiotics", "Prebiotic Fiber (e.g., inulin, MOS)"}},
	{FocusJoint, []string{"Joint Support (Glucosamine/Chondroitin/UC-II)", "Omega-3 (Fish Oil)"}},
	{FocusPuppy, []string{"Calcium Support (for home-cooked)", "Canine Multivitamin"}},
	{FocusSenior, []string{"Omega-3 (Fish Oil)", "Joint Support (Glucosamine/Chondroitin/UC-II)", "Probiotics"}},
	{FocusWeight, []string{"Probiotics", "L-Carnitine (vet-guided)"}},
	{FocusDental, []string{"Dental Additives (enzymatic or vet-approved)"}},
	{FocusUrinary, []string{"Urinary Support (condition-specific)"}},
}

func Supplements() []model.Supplement {
	out := make([]model.Supplement, len(supplements))
	copy(out, supplements)
	return out
}

func SupplementFocuses() []string {
	out := make([]string, len(focusSuggestions))
	for i, fs := range focusSuggestions {
		out[i] = fs.focus
	}
	return out
}

func SuggestSupplements(focuses []string) []string {
	active := make(map[string]bool, len(focuses))
	for _, f := range focuses {
		active[f] = true
	}

	var out []string
	seen := make(map[string]bool)
	for _, fs := range focusSuggestions {
		if !active[fs.focus] {
			continue
		}
		for _, name := range fs.names {
			if seen[name] {
				continue
			}
			seen[name] = true
			out = append(out, name)
		}
	}
	return out
}
