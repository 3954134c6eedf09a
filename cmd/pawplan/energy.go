package pawplan

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pawplan/pawplan-cli/internal/mealplan"
)

var (
	energyProfile profileFlags
	energyJSON    bool
)

var energyCmd = &cobra.Command{
	Use:   "energy",
	Short: "Compute daily energy target for a dog profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		profile, err := energyProfile.resolve(cmd)
		if err != nil {
			return err
		}
		breakdown, err := mealplan.DailyEnergy(profile)
		if err != nil {
			return err
		}
		if energyJSON {
			return printJSON(cmd.OutOrStdout(), breakdown)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Life stage: %s\n", breakdown.LifeStage)
		fmt.Fprintf(cmd.OutOrStdout(), "RER: %.1f kcal/day\n", breakdown.RER)
		fmt.Fprintf(cmd.OutOrStdout(), "MER: %.1f kcal/day (factor %.2f)\n", breakdown.MER, breakdown.Factor)
		fmt.Fprintf(cmd.OutOrStdout(), "Adjusted target: %.1f kcal/day (adjustment %.2f)\n", breakdown.AdjustedMER, breakdown.Adjustment)
		fmt.Fprintf(cmd.OutOrStdout(), "Rationale: %s\n", breakdown.Explanation)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(energyCmd)
	energyProfile.register(energyCmd)
	energyCmd.Flags().BoolVar(&energyJSON, "json", false, "Output JSON")
}
