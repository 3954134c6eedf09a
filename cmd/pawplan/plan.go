package pawplan

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pawplan/pawplan-cli/internal/catalog"
	"github.com/pawplan/pawplan-cli/internal/mealplan"
	"github.com/pawplan/pawplan-cli/internal/model"
	"github.com/pawplan/pawplan-cli/internal/store"
)

var (
	planProfile     profileFlags
	planPreset      string
	planMeatPct     int
	planVegPct      int
	planCarbPct     int
	planKcalPerGram float64
	planDays        int
	planSeed        int64
	planMode        string
	planSave        bool
	planJSON        bool
	planLimit       int
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Generate and manage rotating meal plans",
}

var planGenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a multi-day rotation for a dog profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		profile, err := planProfile.resolve(cmd)
		if err != nil {
			return err
		}
		return withDB(func(sqldb *sql.DB) error {
			in, err := buildPlanInput(cmd, sqldb, profile)
			if err != nil {
				return err
			}
			result, err := mealplan.BuildPlan(in)
			if err != nil {
				return err
			}

			token := ""
			if planSave {
				saved, err := store.SavePlan(sqldb, in, result)
				if err != nil {
					return err
				}
				token = saved.Token
			}

			if planJSON {
				return printJSON(cmd.OutOrStdout(), struct {
					Token string `json:"token,omitempty"`
					mealplan.PlanResult
				}{Token: token, PlanResult: result})
			}
			renderPlan(cmd, result)
			if token != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "Saved as %s\n", token)
			}
			return nil
		})
	},
}

// Config rows supply defaults; flags passed explicitly win.
func buildPlanInput(cmd *cobra.Command, sqldb *sql.DB, profile model.Profile) (mealplan.PlanInput, error) {
	kcalPerGram := planKcalPerGram
	if !cmd.Flags().Changed("kcal-per-gram") {
		v, err := store.KcalPerGram(sqldb)
		if err != nil {
			return mealplan.PlanInput{}, err
		}
		kcalPerGram = v
	}
	days := planDays
	if !cmd.Flags().Changed("days") {
		v, err := store.PlanDaysDefault(sqldb)
		if err != nil {
			return mealplan.PlanInput{}, err
		}
		days = v
	}

	custom := cmd.Flags().Changed("meat") || cmd.Flags().Changed("veg") || cmd.Flags().Changed("carb")
	meatPct, vegPct, carbPct := planMeatPct, planVegPct, planCarbPct
	if !custom {
		presetKey := planPreset
		if !cmd.Flags().Changed("preset") {
			v, err := store.DefaultPreset(sqldb)
			if err != nil {
				return mealplan.PlanInput{}, err
			}
			presetKey = v
		}
		preset, err := catalog.PresetByKey(presetKey)
		if err != nil {
			return mealplan.PlanInput{}, err
		}
		meatPct, vegPct, carbPct = preset.MeatPct, preset.VegPct, preset.CarbPct
	} else if cmd.Flags().Changed("preset") {
		return mealplan.PlanInput{}, fmt.Errorf("--preset cannot be combined with --meat/--veg/--carb")
	}

	pantry, err := store.PantryPools(sqldb)
	if err != nil {
		return mealplan.PlanInput{}, err
	}

	return mealplan.PlanInput{
		Profile:     profile,
		MeatPct:     meatPct,
		VegPct:      vegPct,
		CarbPct:     carbPct,
		KcalPerGram: kcalPerGram,
		Pantry:      pantry,
		Mode:        planMode,
		Days:        days,
		Seed:        planSeed,
	}, nil
}

func renderPlan(cmd *cobra.Command, result mealplan.PlanResult) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Life stage: %s\n", result.Energy.LifeStage)
	fmt.Fprintf(out, "Daily target: %.0f kcal (%s)\n", result.Energy.AdjustedMER, result.Energy.Explanation)
	fmt.Fprintf(out, "Ratio: %d/%d/%d (meat/veg/carb)\n", result.MeatPct, result.VegPct, result.CarbPct)
	fmt.Fprintf(out, "Food per day: %.0f g (meat %.0f g, veg %.0f g, carb %.0f g)\n",
		result.DailyGrams, result.Split.MeatG, result.Split.VegG, result.Split.CarbG)
	fmt.Fprintln(out, "DAY\tMEAT\tVEG\tCARB\tKCAL\tP\tF\tC")
	for _, day := range result.Days {
		fmt.Fprintf(out, "%d\t%s\t%s\t%s\t%.0f\t%.0f\t%.0f\t%.0f\n",
			day.Day, day.Meat, day.Veg, day.Carb,
			day.Nutrition.Kcal, day.Nutrition.ProteinG, day.Nutrition.FatG, day.Nutrition.CarbsG)
	}
}

var planListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved plans",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			plans, err := store.ListPlans(sqldb, planLimit)
			if err != nil {
				return err
			}
			if planJSON {
				return printJSON(cmd.OutOrStdout(), plans)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "TOKEN\tCREATED\tDAYS\tMODE\tKCAL/DAY\tGRAMS/DAY")
			for _, p := range plans {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%d\t%s\t%.0f\t%.0f\n",
					p.Token[:8], p.CreatedAt.Format("2006-01-02 15:04"), p.Days, p.Mode, p.DailyKcal, p.DailyGrams)
			}
			return nil
		})
	},
}

var planShowCmd = &cobra.Command{
	Use:   "show <token>",
	Short: "Show a saved plan by token or unique prefix",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			plan, err := store.GetPlan(sqldb, args[0])
			if err != nil {
				return err
			}
			days, err := store.PlanDays(sqldb, plan.ID)
			if err != nil {
				return err
			}
			if planJSON {
				return printJSON(cmd.OutOrStdout(), struct {
					Plan model.SavedPlan `json:"plan"`
					Days []model.DayPlan `json:"days"`
				}{Plan: plan, Days: days})
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Token: %s\nCreated: %s\n", plan.Token, plan.CreatedAt.Format("2006-01-02 15:04"))
			fmt.Fprintf(out, "Profile: %.1f kg, %.1f y, %s", plan.WeightKg, plan.AgeYears, plan.Activity)
			if plan.Breed != "" {
				fmt.Fprintf(out, ", %s", plan.Breed)
			}
			fmt.Fprintln(out)
			flags, err := store.DecodeFlags(plan.Flags)
			if err != nil {
				return err
			}
			if len(flags) > 0 {
				fmt.Fprintf(out, "Flags: %s\n", strings.Join(flags, "; "))
			}
			fmt.Fprintf(out, "Ratio: %d/%d/%d, %.2f kcal/g, mode %s, seed %d\n",
				plan.MeatPct, plan.VegPct, plan.CarbPct, plan.KcalPerGram, plan.Mode, plan.Seed)
			fmt.Fprintf(out, "Daily: %.0f kcal, %.0f g\n", plan.DailyKcal, plan.DailyGrams)
			fmt.Fprintln(out, "DAY\tMEAT\tVEG\tCARB\tKCAL")
			for _, day := range days {
				fmt.Fprintf(out, "%d\t%s\t%s\t%s\t%.0f\n", day.Day, day.Meat, day.Veg, day.Carb, day.Nutrition.Kcal)
			}
			return nil
		})
	},
}

var planDeleteCmd = &cobra.Command{
	Use:   "delete <token>",
	Short: "Delete a saved plan",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			token, err := store.DeletePlan(sqldb, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted plan %s\n", token)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(planCmd)
	planCmd.AddCommand(planGenerateCmd)
	planCmd.AddCommand(planListCmd)
	planCmd.AddCommand(planShowCmd)
	planCmd.AddCommand(planDeleteCmd)

	planProfile.register(planGenerateCmd)
	planGenerateCmd.Flags().StringVar(&planPreset, "preset", "", "Ratio preset key (see 'ratio presets')")
	planGenerateCmd.Flags().IntVar(&planMeatPct, "meat", 0, "Custom meat percent")
	planGenerateCmd.Flags().IntVar(&planVegPct, "veg", 0, "Custom veg percent")
	planGenerateCmd.Flags().IntVar(&planCarbPct, "carb", 0, "Custom carb percent")
	planGenerateCmd.Flags().Float64Var(&planKcalPerGram, "kcal-per-gram", mealplan.DefaultKcalPerGram, "Assumed energy density of the cooked mix")
	planGenerateCmd.Flags().IntVar(&planDays, "days", mealplan.DefaultDays, "Number of days to plan")
	planGenerateCmd.Flags().Int64Var(&planSeed, "seed", mealplan.DefaultSeed, "Rotation seed (same seed, same plan)")
	planGenerateCmd.Flags().StringVar(&planMode, "mode", model.ModePantry, "Rotation mode: pantry or smart")
	planGenerateCmd.Flags().BoolVar(&planSave, "save", false, "Save the generated plan")
	planGenerateCmd.Flags().BoolVar(&planJSON, "json", false, "Output JSON")

	planListCmd.Flags().IntVar(&planLimit, "limit", 20, "Max plans to list")
	planListCmd.Flags().BoolVar(&planJSON, "json", false, "Output JSON")
	planShowCmd.Flags().BoolVar(&planJSON, "json", false, "Output JSON")
}
