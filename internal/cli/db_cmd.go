package cli

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/haytac/fa2emoji/internal/database"
)

// NewDbCmd creates the 'db' command for history database maintenance.
func NewDbCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "db",
		Short: "Manage the run-history database (SQLite)",
	}

	cmd.AddCommand(newDbBackupCmd())

	return cmd
}

func newDbBackupCmd() *cobra.Command {
	var outputPath string
	backupCmd := &cobra.Command{
		Use:   "backup",
		Short: "Backup the run-history database",
		RunE: func(cmd *cobra.Command, args []string) error {
			if AppCfg == nil {
				return fmt.Errorf("critical: AppCfg not loaded")
			}

			db, err := database.Connect(AppCfg.History.DatabasePath)
			if err != nil {
				return fmt.Errorf("failed to connect to database: %w", err)
			}
			defer db.Close()

			if outputPath == "" {
				dbDir := filepath.Dir(AppCfg.History.DatabasePath)
				dbName := filepath.Base(AppCfg.History.DatabasePath)
				timestamp := time.Now().Format("20060102-150405")
				outputPath = filepath.Join(dbDir, fmt.Sprintf("%s-backup-%s.db", dbName, timestamp))
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Backing up database from '%s' to '%s'...\n", AppCfg.History.DatabasePath, outputPath)
			if err := db.Backup(cmd.Context(), outputPath); err != nil {
				return fmt.Errorf("database backup failed: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Database backup successful.")
			return nil
		},
	}
	backupCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output path for the backup file (default: [db_dir]/[db_name]-backup-[timestamp].db)")
	return backupCmd
}
