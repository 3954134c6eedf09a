package pawplan

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pawplan/pawplan-cli/internal/store"
)

var (
	pantryCategory string
	pantryJSON     bool
)

var pantryCmd = &cobra.Command{
	Use:   "pantry",
	Short: "Manage the ingredients you have on hand",
}

var pantryAddCmd = &cobra.Command{
	Use:   "add <ingredient>",
	Short: "Add a catalog ingredient to the pantry",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			item, err := store.AddPantryItem(sqldb, strings.Join(args, " "))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added %s (%s)\n", item.Name, item.Category)
			return nil
		})
	},
}

var pantryListCmd = &cobra.Command{
	Use:   "list",
	Short: "List pantry items",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			items, err := store.ListPantry(sqldb, pantryCategory)
			if err != nil {
				return err
			}
			if pantryJSON {
				return printJSON(cmd.OutOrStdout(), items)
			}
			if len(items) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "Pantry is empty")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), "NAME\tCATEGORY\tADDED")
			for _, item := range items {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", item.Name, item.Category, item.CreatedAt.Format("2006-01-02"))
			}
			return nil
		})
	},
}

var pantryRemoveCmd = &cobra.Command{
	Use:   "remove <ingredient>",
	Short: "Remove an ingredient from the pantry",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			name, err := store.RemovePantryItem(sqldb, strings.Join(args, " "))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", name)
			return nil
		})
	},
}

var pantryClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all pantry items",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			removed, err := store.ClearPantry(sqldb)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %d pantry items\n", removed)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(pantryCmd)
	pantryCmd.AddCommand(pantryAddCmd)
	pantryCmd.AddCommand(pantryListCmd)
	pantryCmd.AddCommand(pantryRemoveCmd)
	pantryCmd.AddCommand(pantryClearCmd)
	pantryListCmd.Flags().StringVar(&pantryCategory, "category", "", "Filter by category")
	pantryListCmd.Flags().BoolVar(&pantryJSON, "json", false, "Output JSON")
}
