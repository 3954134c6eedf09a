package pawplan

import (
	"database/sql"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pawplan/pawplan-cli/internal/store"
)

var doctorFix bool

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Run data integrity checks against the catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			report, err := store.RunDoctor(sqldb, doctorFix)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Unknown pantry items: %d\n", report.UnknownPantryItems)
			fmt.Fprintf(out, "Miscategorized pantry items: %d\n", report.MiscategorizedPantry)
			fmt.Fprintf(out, "Unknown taste-log ingredients: %d\n", report.UnknownTasteNames)
			fmt.Fprintf(out, "Invalid taste preference levels: %d\n", report.InvalidTasteLevels)
			fmt.Fprintf(out, "Orphan plan days: %d\n", report.OrphanPlanDays)
			fmt.Fprintf(out, "Invalid plan flags: %d\n", report.InvalidPlanFlags)
			if doctorFix {
				fmt.Fprintf(out, "Removed pantry rows: %d\n", report.RemovedPantryRows)
				fmt.Fprintf(out, "Fixed pantry categories: %d\n", report.FixedPantryCategories)
				fmt.Fprintf(out, "Removed taste rows: %d\n", report.RemovedTasteRows)
				fmt.Fprintf(out, "Removed plan day rows: %d\n", report.RemovedPlanDayRows)
				fmt.Fprintf(out, "Reset plan flag rows: %d\n", report.ResetPlanFlagRows)
				// Re-check after fixes so exit status reflects final state.
				report, err = store.RunDoctor(sqldb, false)
				if err != nil {
					return err
				}
			}
			if report.UnknownPantryItems > 0 || report.MiscategorizedPantry > 0 ||
				report.UnknownTasteNames > 0 || report.InvalidTasteLevels > 0 ||
				report.OrphanPlanDays > 0 || report.InvalidPlanFlags > 0 {
				return fmt.Errorf("doctor found integrity issues")
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(doctorCmd)
	doctorCmd.Flags().BoolVar(&doctorFix, "fix", false, "Attempt safe auto-fixes")
}
