package pawplan

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pawplan/pawplan-cli/internal/mealplan"
)

var (
	recommendProfile profileFlags
	recommendJSON    bool
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Recommend ingredient varieties for a dog profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		profile, err := recommendProfile.resolve(cmd)
		if err != nil {
			return err
		}
		recs := mealplan.RecommendForProfile(profile)
		if recommendJSON {
			return printJSON(cmd.OutOrStdout(), recs)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Meats: %s\n", strings.Join(recs.Meats, ", "))
		fmt.Fprintf(cmd.OutOrStdout(), "Vegs: %s\n", strings.Join(recs.Vegs, ", "))
		fmt.Fprintf(cmd.OutOrStdout(), "Carbs: %s\n", strings.Join(recs.Carbs, ", "))
		fmt.Fprintf(cmd.OutOrStdout(), "Treats: %s\n", strings.Join(recs.Treats, ", "))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(recommendCmd)
	recommendProfile.register(recommendCmd)
	recommendCmd.Flags().BoolVar(&recommendJSON, "json", false, "Output JSON")
}
