package app_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pawplan/pawplan-cli/internal/app"
	"github.com/pawplan/pawplan-cli/internal/model"
)

func writeProfileFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "profile.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write profile file: %v", err)
	}
	return path
}

func TestLoadProfile(t *testing.T) {
	t.Parallel()
	path := writeProfileFile(t, `
breed: Labrador Retriever
age_years: 3
weight_kg: 28.5
activity: High
neutered: true
flags:
  - Skin/coat concern
  - sensitive stomach
`)
	profile, err := app.LoadProfile(path)
	if err != nil {
		t.Fatalf("load profile: %v", err)
	}
	if profile.Breed != "Labrador Retriever" {
		t.Fatalf("breed = %q", profile.Breed)
	}
	if profile.WeightKg != 28.5 || profile.AgeYears != 3 {
		t.Fatalf("unexpected numerics: %+v", profile)
	}
	if profile.Activity != model.ActivityHigh || !profile.Neutered {
		t.Fatalf("unexpected activity/neutered: %+v", profile)
	}
	want := []string{model.FlagSkinCoat, model.FlagSensitive}
	if len(profile.Flags) != len(want) {
		t.Fatalf("flags = %v, want %v", profile.Flags, want)
	}
	for i := range want {
		if profile.Flags[i] != want[i] {
			t.Fatalf("flags = %v, want %v", profile.Flags, want)
		}
	}
}

func TestLoadProfileDefaultsActivity(t *testing.T) {
	t.Parallel()
	path := writeProfileFile(t, "age_years: 2\nweight_kg: 10\n")
	profile, err := app.LoadProfile(path)
	if err != nil {
		t.Fatalf("load profile: %v", err)
	}
	if profile.Activity != model.ActivityNormal {
		t.Fatalf("activity = %q, want %q", profile.Activity, model.ActivityNormal)
	}
}

func TestLoadProfileRejectsBadInput(t *testing.T) {
	t.Parallel()
	cases := map[string]string{
		"zero weight":  "age_years: 2\nweight_kg: 0\n",
		"zero age":     "age_years: 0\nweight_kg: 10\n",
		"unknown flag": "age_years: 2\nweight_kg: 10\nflags: [Zoomies]\n",
		"bad yaml":     "age_years: [\n",
	}
	for name, content := range cases {
		path := writeProfileFile(t, content)
		if _, err := app.LoadProfile(path); err == nil {
			t.Fatalf("%s: expected error", name)
		}
	}
}

func TestCanonicalFlagsCollapsesNone(t *testing.T) {
	t.Parallel()
	flags, err := app.CanonicalFlags([]string{"None", "Very picky eater", "None"})
	if err != nil {
		t.Fatalf("canonical flags: %v", err)
	}
	if len(flags) != 1 || flags[0] != model.FlagPicky {
		t.Fatalf("flags = %v, want [%s]", flags, model.FlagPicky)
	}

	only, err := app.CanonicalFlags([]string{"none"})
	if err != nil {
		t.Fatalf("canonical flags: %v", err)
	}
	if len(only) != 1 || only[0] != model.FlagNone {
		t.Fatalf("flags = %v, want [None]", only)
	}
}
