package cli

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/haytac/fa2emoji/internal/app"
)

// NewRunCmd creates the run command.
func NewRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Rewrite FontAwesome icons to emoji across the views directory",
		Long: `Scans the configured views directory for template files, replaces every
known FontAwesome icon element with its emoji, and prints a summary. Files
under a 'backup' directory are never touched. Per-file failures are reported
and skipped; only a missing views directory stops the run.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if AppCfg == nil {
				log.Error().Msg("Configuration (AppCfg) not loaded in 'run' command.")
				return fmt.Errorf("critical: AppCfg not loaded")
			}

			application, err := app.NewApplication(AppCfg)
			if err != nil {
				log.Error().Err(err).Msg("Failed to initialize application")
				return fmt.Errorf("failed to initialize application: %w", err)
			}
			defer application.Close()

			return application.Run(cmd.Context())
		},
	}
	return cmd
}
