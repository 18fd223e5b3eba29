package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/haytac/fa2emoji/internal/config"
	"github.com/haytac/fa2emoji/internal/logging"
)

var (
	cfgFile  string
	dryRun   bool
	viewsDir string
	AppCfg   *config.AppConfig // Populated in PersistentPreRunE
)

var RootCmd = &cobra.Command{
	Use:   "fa2emoji",
	Short: "Replace FontAwesome icon markup in view templates with emoji.",
	Long: `fa2emoji scans a directory tree of EJS view templates, replaces known
FontAwesome icon elements with Unicode emoji in place, and reports what it
changed. Icon classes built from template expressions are left alone; use
'fa2emoji audit' to find them.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loadedCfg, err := config.LoadConfig(cfgFile)
		if err != nil {
			return fmt.Errorf("error loading config: %w", err)
		}
		AppCfg = loadedCfg

		logging.Setup(AppCfg.Log)
		AppCfg.DryRun = dryRun
		if cmd.Flags().Changed("views") {
			AppCfg.ViewsDir = viewsDir
		}
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	RootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml, $HOME/.fa2emoji/config.yaml)")
	RootCmd.PersistentFlags().BoolVar(&dryRun, "dry-run", false, "report replacements without writing any file")
	RootCmd.PersistentFlags().StringVar(&viewsDir, "views", "", "root directory to scan (default ./views)")

	// Subcommands use the global AppCfg populated by PersistentPreRunE.
	RootCmd.AddCommand(NewRunCmd())
	RootCmd.AddCommand(NewIconsCmd())
	RootCmd.AddCommand(NewAuditCmd())
	RootCmd.AddCommand(NewHistoryCmd())
	RootCmd.AddCommand(NewDbCmd())
}
