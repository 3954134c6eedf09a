package pawplan

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pawplan/pawplan-cli/internal/catalog"
)

var (
	supplementFocuses []string
	supplementsJSON   bool
)

var supplementsCmd = &cobra.Command{
	Use:   "supplements",
	Short: "Browse supplement guidance",
}

var supplementsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the supplement guidance table",
	RunE: func(cmd *cobra.Command, args []string) error {
		supplements := catalog.Supplements()
		if supplementsJSON {
			return printJSON(cmd.OutOrStdout(), supplements)
		}
		for _, s := range supplements {
			fmt.Fprintf(cmd.OutOrStdout(), "%s\n  Why: %s\n  Best for: %s\n", s.Name, s.Why, strings.Join(s.BestFor, ", "))
			if s.Cautions != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "  Cautions: %s\n", s.Cautions)
			}
			if s.Pairing != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "  Pairing: %s\n", s.Pairing)
			}
		}
		return nil
	},
}

var supplementsSuggestCmd = &cobra.Command{
	Use:   "suggest",
	Short: "Suggest supplements for one or more focus areas",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(supplementFocuses) == 0 {
			return fmt.Errorf("at least one --focus is required (one of %s)", strings.Join(catalog.SupplementFocuses(), ", "))
		}
		names := catalog.SuggestSupplements(supplementFocuses)
		if len(names) == 0 {
			return fmt.Errorf("no suggestions for focuses %s (expected one of %s)",
				strings.Join(supplementFocuses, ", "), strings.Join(catalog.SupplementFocuses(), ", "))
		}
		if supplementsJSON {
			return printJSON(cmd.OutOrStdout(), names)
		}
		for _, name := range names {
			fmt.Fprintln(cmd.OutOrStdout(), name)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(supplementsCmd)
	supplementsCmd.AddCommand(supplementsListCmd)
	supplementsCmd.AddCommand(supplementsSuggestCmd)
	supplementsCmd.PersistentFlags().BoolVar(&supplementsJSON, "json", false, "Output JSON")
	supplementsSuggestCmd.Flags().StringSliceVar(&supplementFocuses, "focus", nil, "Focus area (repeatable)")
}
