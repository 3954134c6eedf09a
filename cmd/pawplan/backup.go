package pawplan

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/pawplan/pawplan-cli/internal/store"
)

var (
	backupOut   string
	backupForce bool
)

var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Back up and restore the pawplan database",
}

var backupCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Copy the database to a checksummed backup file",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := resolveDBPath()
		if err != nil {
			return err
		}
		out := backupOut
		if out == "" {
			out = filepath.Join(filepath.Dir(path), "backups", store.DefaultBackupName(time.Now()))
		}
		info, err := store.CreateBackup(path, out)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Backed up to %s (%d bytes, sha256 %s)\n", info.Path, info.SizeBytes, info.Checksum[:12])
		return nil
	},
}

var backupRestoreCmd = &cobra.Command{
	Use:   "restore <backup-file>",
	Short: "Restore the database from a backup file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := resolveDBPath()
		if err != nil {
			return err
		}
		if err := store.RestoreBackup(args[0], path, backupForce); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Restored %s from %s\n", path, args[0])
		return nil
	},
}

var backupListCmd = &cobra.Command{
	Use:   "list [dir]",
	Short: "List backups in a directory",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := ""
		if len(args) == 1 {
			dir = args[0]
		} else {
			path, err := resolveDBPath()
			if err != nil {
				return err
			}
			dir = filepath.Join(filepath.Dir(path), "backups")
		}
		backups, err := store.ListBackups(dir)
		if err != nil {
			return err
		}
		if len(backups) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No backups found")
			return nil
		}
		fmt.Fprintln(cmd.OutOrStdout(), "PATH\tCREATED\tSIZE")
		for _, b := range backups {
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%d\n", b.Path, b.CreatedAt.Format("2006-01-02 15:04"), b.SizeBytes)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(backupCmd)
	backupCmd.AddCommand(backupCreateCmd)
	backupCmd.AddCommand(backupRestoreCmd)
	backupCmd.AddCommand(backupListCmd)
	backupCreateCmd.Flags().StringVar(&backupOut, "out", "", "Backup file path")
	backupRestoreCmd.Flags().BoolVar(&backupForce, "force", false, "Overwrite an existing database")
}
