package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/haytac/fa2emoji/internal/database"
)

// NewHistoryCmd creates the 'history' command for inspecting recorded runs.
func NewHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Inspect recorded rewrite runs (requires history.enabled)",
	}

	cmd.AddCommand(newHistoryListCmd())
	cmd.AddCommand(newHistoryShowCmd())

	return cmd
}

func newHistoryListCmd() *cobra.Command {
	var limit int
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List recent runs, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			if AppCfg == nil {
				return fmt.Errorf("critical: AppCfg not loaded")
			}

			db, err := database.Connect(AppCfg.History.DatabasePath)
			if err != nil {
				return fmt.Errorf("failed to open history database: %w", err)
			}
			defer db.Close()

			runs, err := database.NewRunStore(db).ListRuns(cmd.Context(), limit)
			if err != nil {
				return fmt.Errorf("failed to list runs: %w", err)
			}
			if len(runs) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No runs recorded. Enable history.enabled and run a rewrite.")
				return nil
			}

			for _, r := range runs {
				mode := ""
				if r.DryRun {
					mode = " (dry run)"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "#%d  %s  %s%s: %d scanned, %d modified, %d icons, %d errors\n",
					r.ID, r.FinishedAt.Local().Format("2006-01-02 15:04:05"), r.Root, mode,
					r.FilesScanned, r.FilesModified, r.IconsReplaced, r.ErrorCount)
			}
			return nil
		},
	}
	listCmd.Flags().IntVarP(&limit, "limit", "n", 20, "maximum number of runs to show")
	return listCmd
}

func newHistoryShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <run-id>",
		Short: "Show the per-file results of one run",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if AppCfg == nil {
				return fmt.Errorf("critical: AppCfg not loaded")
			}

			var runID int64
			if _, err := fmt.Sscanf(args[0], "%d", &runID); err != nil {
				return fmt.Errorf("invalid run id %q", args[0])
			}

			db, err := database.Connect(AppCfg.History.DatabasePath)
			if err != nil {
				return fmt.Errorf("failed to open history database: %w", err)
			}
			defer db.Close()

			files, err := database.NewRunStore(db).GetRunFiles(cmd.Context(), runID)
			if err != nil {
				return fmt.Errorf("failed to load run files: %w", err)
			}
			if len(files) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "Run #%d has no recorded file changes.\n", runID)
				return nil
			}

			for _, f := range files {
				if f.Error != nil {
					fmt.Fprintf(cmd.OutOrStdout(), "%s: error: %s\n", f.Path, *f.Error)
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %d icons replaced\n", f.Path, f.IconsReplaced)
			}
			return nil
		},
	}
}
