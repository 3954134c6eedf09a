package pawplan

import (
	"database/sql"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pawplan/pawplan-cli/internal/model"
	"github.com/pawplan/pawplan-cli/internal/store"
)

var (
	tasteBreed      string
	tasteAge        float64
	tasteWeight     float64
	tasteProtein    string
	tasteVeg        string
	tastePreference string
	tasteNotes      string
	tasteLimit      int
	tasteField      string
	tasteJSON       bool
)

var tasteCmd = &cobra.Command{
	Use:   "taste",
	Short: "Log and rank what your dog actually eats",
}

var tasteAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Record a taste observation",
	RunE: func(cmd *cobra.Command, args []string) error {
		in := store.AddTasteEntryInput{
			Breed:      tasteBreed,
			AgeYears:   tasteAge,
			WeightKg:   tasteWeight,
			Protein:    tasteProtein,
			Veg:        tasteVeg,
			Preference: tastePreference,
			Notes:      tasteNotes,
		}
		return withDB(func(sqldb *sql.DB) error {
			id, err := store.AddTasteEntry(sqldb, in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Recorded taste entry %d\n", id)
			return nil
		})
	},
}

var tasteListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent taste entries",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			entries, err := store.ListTasteEntries(sqldb, tasteLimit)
			if err != nil {
				return err
			}
			if tasteJSON {
				return printJSON(cmd.OutOrStdout(), entries)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "ID\tWHEN\tPROTEIN\tVEG\tPREFERENCE\tNOTES")
			for _, e := range entries {
				fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%s\t%s\t%s\t%s\n",
					e.ID, e.CreatedAt.Format("2006-01-02"), orDash(e.Protein), orDash(e.Veg), e.Preference, e.Notes)
			}
			return nil
		})
	},
}

var tasteDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a taste entry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(strings.TrimSpace(args[0]), 10, 64)
		if err != nil || id <= 0 {
			return fmt.Errorf("invalid taste entry id %q", args[0])
		}
		return withDB(func(sqldb *sql.DB) error {
			if err := store.DeleteTasteEntry(sqldb, id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted taste entry %d\n", id)
			return nil
		})
	},
}

var tasteRankCmd = &cobra.Command{
	Use:   "rank",
	Short: "Rank ingredients by mean preference score",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			ranks, err := store.RankTaste(sqldb, tasteField)
			if err != nil {
				return err
			}
			if tasteJSON {
				return printJSON(cmd.OutOrStdout(), ranks)
			}
			if len(ranks) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No taste entries yet")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), "NAME\tSCORE\tENTRIES")
			for _, r := range ranks {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%.2f\t%d\n", r.Name, r.Score, r.Entries)
			}
			return nil
		})
	},
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func init() {
	rootCmd.AddCommand(tasteCmd)
	tasteCmd.AddCommand(tasteAddCmd)
	tasteCmd.AddCommand(tasteListCmd)
	tasteCmd.AddCommand(tasteDeleteCmd)
	tasteCmd.AddCommand(tasteRankCmd)

	tasteAddCmd.Flags().StringVar(&tasteBreed, "breed", "", "Breed at time of observation")
	tasteAddCmd.Flags().Float64Var(&tasteAge, "age", 0, "Age in years at time of observation")
	tasteAddCmd.Flags().Float64Var(&tasteWeight, "weight", 0, "Weight in kg at time of observation")
	tasteAddCmd.Flags().StringVar(&tasteProtein, "protein", "", "Observed meat ingredient")
	tasteAddCmd.Flags().StringVar(&tasteVeg, "veg", "", "Observed veg ingredient")
	tasteAddCmd.Flags().StringVar(&tastePreference, "preference", model.PreferenceNeutral, "Dislike, Neutral, Like, or Love")
	tasteAddCmd.Flags().StringVar(&tasteNotes, "notes", "", "Free-text note")

	tasteListCmd.Flags().IntVar(&tasteLimit, "limit", 50, "Max entries to list")
	tasteListCmd.Flags().BoolVar(&tasteJSON, "json", false, "Output JSON")

	tasteRankCmd.Flags().StringVar(&tasteField, "field", "protein", "Rank by: protein or veg")
	tasteRankCmd.Flags().BoolVar(&tasteJSON, "json", false, "Output JSON")
}
