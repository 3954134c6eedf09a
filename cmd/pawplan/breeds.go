package pawplan

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pawplan/pawplan-cli/internal/catalog"
)

var breedsJSON bool

var breedsCmd = &cobra.Command{
	Use:   "breeds",
	Short: "Browse known breeds and size classes",
}

var breedsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List known breeds",
	RunE: func(cmd *cobra.Command, args []string) error {
		names := catalog.Breeds()
		if breedsJSON {
			return printJSON(cmd.OutOrStdout(), names)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "BREED\tSIZE")
		for _, name := range names {
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", name, catalog.SizeClass(name))
		}
		return nil
	},
}

var breedsSizeCmd = &cobra.Command{
	Use:   "size <breed>",
	Short: "Show the size class for a breed",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		breed := strings.Join(args, " ")
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", breed, catalog.SizeClass(breed))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(breedsCmd)
	breedsCmd.AddCommand(breedsListCmd)
	breedsCmd.AddCommand(breedsSizeCmd)
	breedsListCmd.Flags().BoolVar(&breedsJSON, "json", false, "Output JSON")
}
