package app

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/pawplan/pawplan-cli/internal/model"
)

type profileFile struct {
	Breed    string   `yaml:"breed"`
	AgeYears float64  `yaml:"age_years"`
	WeightKg float64  `yaml:"weight_kg"`
	Activity string   `yaml:"activity"`
	Neutered bool     `yaml:"neutered"`
	Flags    []string `yaml:"flags"`
}

var knownFlags = map[string]string{
	strings.ToLower(model.FlagNone):       model.FlagNone,
	strings.ToLower(model.FlagWeightLoss): model.FlagWeightLoss,
	strings.ToLower(model.FlagSensitive):  model.FlagSensitive,
	strings.ToLower(model.FlagLowFat):     model.FlagLowFat,
	strings.ToLower(model.FlagSkinCoat):   model.FlagSkinCoat,
	strings.ToLower(model.FlagPicky):      model.FlagPicky,
	strings.ToLower(model.FlagKidney):     model.FlagKidney,
	strings.ToLower(model.FlagAllergy):    model.FlagAllergy,
	strings.ToLower(model.FlagJoint):      model.FlagJoint,
}

// LoadProfile reads a dog profile from a YAML file. Flags must match
// the known set; activity strings pass through untouched because the
// energy model treats unknown tiers leniently.
func LoadProfile(path string) (model.Profile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return model.Profile{}, fmt.Errorf("read profile file: %w", err)
	}
	var pf profileFile
	if err := yaml.Unmarshal(raw, &pf); err != nil {
		return model.Profile{}, fmt.Errorf("parse profile file %s: %w", path, err)
	}
	if pf.WeightKg <= 0 {
		return model.Profile{}, fmt.Errorf("profile file %s: weight_kg must be > 0", path)
	}
	if pf.AgeYears <= 0 {
		return model.Profile{}, fmt.Errorf("profile file %s: age_years must be > 0", path)
	}
	activity := strings.TrimSpace(pf.Activity)
	if activity == "" {
		activity = model.ActivityNormal
	}
	flags, err := CanonicalFlags(pf.Flags)
	if err != nil {
		return model.Profile{}, fmt.Errorf("profile file %s: %w", path, err)
	}
	return model.Profile{
		Breed:    strings.TrimSpace(pf.Breed),
		AgeYears: pf.AgeYears,
		WeightKg: pf.WeightKg,
		Activity: activity,
		Neutered: pf.Neutered,
		Flags:    flags,
	}, nil
}

// CanonicalFlags maps case-insensitive flag spellings onto the fixed
// enumeration and collapses "None" when any other flag is present.
func CanonicalFlags(flags []string) ([]string, error) {
	out := make([]string, 0, len(flags))
	seen := make(map[string]bool, len(flags))
	for _, flag := range flags {
		trimmed := strings.TrimSpace(flag)
		if trimmed == "" {
			continue
		}
		canonical, ok := knownFlags[strings.ToLower(trimmed)]
		if !ok {
			return nil, fmt.Errorf("unknown special flag %q", flag)
		}
		if seen[canonical] {
			continue
		}
		seen[canonical] = true
		out = append(out, canonical)
	}
	if len(out) > 1 {
		filtered := out[:0]
		for _, flag := range out {
			if flag != model.FlagNone {
				filtered = append(filtered, flag)
			}
		}
		out = filtered
	}
	return out, nil
}
