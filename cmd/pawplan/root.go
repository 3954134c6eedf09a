package pawplan

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var dbPath string

var rootCmd = &cobra.Command{
	Use:   "pawplan",
	Short: "pawplan builds fresh-food meal plans for dogs from your terminal",
	Long:  "pawplan is a local-first meal planning CLI for dogs: energy targets, macro ratios, rotating multi-day menus, a pantry, a taste log, and supplement guidance.",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Path to SQLite database")
}
