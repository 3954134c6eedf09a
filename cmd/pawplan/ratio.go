package pawplan

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/pawplan/pawplan-cli/internal/catalog"
	"github.com/pawplan/pawplan-cli/internal/mealplan"
)

var ratioJSON bool

var ratioCmd = &cobra.Command{
	Use:   "ratio",
	Short: "Inspect ratio presets and normalize custom splits",
}

var ratioPresetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List macro ratio presets",
	RunE: func(cmd *cobra.Command, args []string) error {
		presets := catalog.Presets()
		if ratioJSON {
			return printJSON(cmd.OutOrStdout(), presets)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "KEY\tMEAT\tVEG\tCARB\tLABEL")
		for _, p := range presets {
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d%%\t%d%%\t%d%%\t%s\n", p.Key, p.MeatPct, p.VegPct, p.CarbPct, p.Label)
		}
		return nil
	},
}

var ratioNormalizeCmd = &cobra.Command{
	Use:   "normalize <meat%> <veg%> <carb%>",
	Short: "Normalize a custom meat/veg/carb split to sum to 100",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		pcts := make([]int, 3)
		names := []string{"meat%", "veg%", "carb%"}
		for i, arg := range args {
			v, err := strconv.Atoi(arg)
			if err != nil {
				return fmt.Errorf("invalid %s %q", names[i], arg)
			}
			pcts[i] = v
		}
		meat, veg, carb, err := mealplan.Normalize(pcts[0], pcts[1], pcts[2])
		if err != nil {
			return err
		}
		if ratioJSON {
			return printJSON(cmd.OutOrStdout(), map[string]int{"meat_pct": meat, "veg_pct": veg, "carb_pct": carb})
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Meat: %d%%\nVeg: %d%%\nCarb: %d%%\n", meat, veg, carb)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(ratioCmd)
	ratioCmd.AddCommand(ratioPresetsCmd)
	ratioCmd.AddCommand(ratioNormalizeCmd)
	ratioCmd.PersistentFlags().BoolVar(&ratioJSON, "json", false, "Output JSON")
}
