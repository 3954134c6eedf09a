package pawplan

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pawplan/pawplan-cli/internal/catalog"
	"github.com/pawplan/pawplan-cli/internal/model"
)

var (
	ingredientsCategory string
	ingredientsJSON     bool
)

var ingredientsCmd = &cobra.Command{
	Use:   "ingredients",
	Short: "Browse the ingredient catalog",
}

var ingredientsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List catalog ingredients",
	RunE: func(cmd *cobra.Command, args []string) error {
		if ingredientsCategory != "" && !catalog.IsCategory(ingredientsCategory) {
			return fmt.Errorf("unknown category %q (expected one of %s)", ingredientsCategory, strings.Join(catalog.Categories(), ", "))
		}
		items := make([]model.Ingredient, 0)
		for _, ing := range catalog.All() {
			if ingredientsCategory == "" || ing.Category == ingredientsCategory {
				items = append(items, ing)
			}
		}
		if ingredientsJSON {
			return printJSON(cmd.OutOrStdout(), items)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "NAME\tCATEGORY\tKCAL/100G\tP\tF\tC")
		for _, ing := range items {
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%.0f\t%.1f\t%.1f\t%.1f\n",
				ing.Name, ing.Category, ing.Kcal, ing.ProteinG, ing.FatG, ing.CarbsG)
		}
		return nil
	},
}

var ingredientsShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Show one ingredient with benefits and cautions",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ing, err := catalog.Match(strings.Join(args, " "))
		if err != nil {
			return err
		}
		if ingredientsJSON {
			return printJSON(cmd.OutOrStdout(), ing)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Name: %s\nCategory: %s\n", ing.Name, ing.Category)
		fmt.Fprintf(cmd.OutOrStdout(), "Per 100g: %.0f kcal, %.1fg protein, %.1fg fat, %.1fg carbs\n", ing.Kcal, ing.ProteinG, ing.FatG, ing.CarbsG)
		fmt.Fprintf(cmd.OutOrStdout(), "Micronutrients: %s\n", ing.Micronote)
		for _, b := range ing.Benefits {
			fmt.Fprintf(cmd.OutOrStdout(), "  + %s\n", b)
		}
		for _, caution := range ing.Cautions {
			fmt.Fprintf(cmd.OutOrStdout(), "  ! %s\n", caution)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(ingredientsCmd)
	ingredientsCmd.AddCommand(ingredientsListCmd)
	ingredientsCmd.AddCommand(ingredientsShowCmd)
	ingredientsCmd.PersistentFlags().StringVar(&ingredientsCategory, "category", "", "Filter by category (Meat, Veg, Carb, Oil, Treat)")
	ingredientsCmd.PersistentFlags().BoolVar(&ingredientsJSON, "json", false, "Output JSON")
}
