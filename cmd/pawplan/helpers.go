package pawplan

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pawplan/pawplan-cli/internal/app"
	"github.com/pawplan/pawplan-cli/internal/db"
	"github.com/pawplan/pawplan-cli/internal/model"
)

func withDB(run func(*sql.DB) error) error {
	path, err := resolveDBPath()
	if err != nil {
		return err
	}
	if err := app.EnsureDBDir(path); err != nil {
		return err
	}
	sqldb, err := db.Open(path)
	if err != nil {
		return err
	}
	defer sqldb.Close()

	if err := db.ApplyMigrations(sqldb); err != nil {
		return err
	}
	return run(sqldb)
}

func resolveDBPath() (string, error) {
	if dbPath != "" {
		return dbPath, nil
	}
	return app.DefaultDBPath()
}

// profileFlags is the shared flag set for every command that needs a
// dog profile. Flags override values loaded from --profile-file.
type profileFlags struct {
	file     string
	breed    string
	ageYears float64
	weightKg float64
	activity string
	neutered bool
	flags    []string
}

func (p *profileFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&p.file, "profile-file", "", "Load profile from a YAML file")
	cmd.Flags().StringVar(&p.breed, "breed", "", "Breed (free text, used for size class and taste log)")
	cmd.Flags().Float64Var(&p.ageYears, "age", 0, "Age in years")
	cmd.Flags().Float64Var(&p.weightKg, "weight", 0, "Weight in kg")
	cmd.Flags().StringVar(&p.activity, "activity", model.ActivityNormal, "Activity tier (Low, Normal, High, Athletic/Working)")
	cmd.Flags().BoolVar(&p.neutered, "neutered", true, "Neutered/spayed")
	cmd.Flags().StringSliceVar(&p.flags, "flag", nil, "Special condition flag (repeatable)")
}

func (p *profileFlags) resolve(cmd *cobra.Command) (model.Profile, error) {
	var profile model.Profile
	if p.file != "" {
		loaded, err := app.LoadProfile(p.file)
		if err != nil {
			return model.Profile{}, err
		}
		profile = loaded
	} else {
		profile.Activity = model.ActivityNormal
	}

	if cmd.Flags().Changed("breed") {
		profile.Breed = strings.TrimSpace(p.breed)
	}
	if cmd.Flags().Changed("age") {
		profile.AgeYears = p.ageYears
	}
	if cmd.Flags().Changed("weight") {
		profile.WeightKg = p.weightKg
	}
	if cmd.Flags().Changed("activity") {
		profile.Activity = p.activity
	}
	if cmd.Flags().Changed("neutered") {
		profile.Neutered = p.neutered
	}
	if cmd.Flags().Changed("flag") {
		flags, err := app.CanonicalFlags(p.flags)
		if err != nil {
			return model.Profile{}, err
		}
		profile.Flags = flags
	}

	if profile.WeightKg <= 0 {
		return model.Profile{}, fmt.Errorf("--weight must be > 0 (or set weight_kg in --profile-file)")
	}
	if profile.AgeYears <= 0 {
		return model.Profile{}, fmt.Errorf("--age must be > 0 (or set age_years in --profile-file)")
	}
	return profile, nil
}

func printJSON(out io.Writer, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}
	fmt.Fprintln(out, string(b))
	return nil
}
