package cli

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/haytac/fa2emoji/internal/audit"
	"github.com/haytac/fa2emoji/internal/icons"
	"github.com/haytac/fa2emoji/internal/locate"
)

// NewAuditCmd creates the audit command. It finds icon markup the rewriter
// cannot handle so the manual follow-up is a worklist instead of guesswork.
func NewAuditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "audit",
		Short: "List icon usages the rewriter cannot replace",
		Long: `Walks the views directory and reports icon elements whose class value is
built from a template expression (only known at render time) or names an icon
class missing from the mapping table. Never modifies any file.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if AppCfg == nil {
				return fmt.Errorf("critical: AppCfg not loaded")
			}

			locator := locate.NewFSLocator(AppCfg.Extensions, AppCfg.ExcludeDirs)
			candidates, err := locator.FindCandidates(AppCfg.ViewsDir)
			if err != nil {
				if errors.Is(err, locate.ErrRootNotFound) {
					return fmt.Errorf("views directory not found: %s", AppCfg.ViewsDir)
				}
				return err
			}

			scanner := audit.NewScanner(icons.Default())
			total := 0
			for _, path := range candidates {
				findings, err := scanner.ScanFile(path)
				if err != nil {
					log.Warn().Err(err).Str("path", path).Msg("Skipping unreadable template")
					continue
				}
				for _, f := range findings {
					total++
					switch f.Reason {
					case audit.ReasonDynamic:
						fmt.Fprintf(cmd.OutOrStdout(), "%s: dynamic class %q\n", f.Path, f.Class)
					case audit.ReasonUnknown:
						fmt.Fprintf(cmd.OutOrStdout(), "%s: unmapped icon %s in %q\n", f.Path, f.Icon, f.Class)
					}
				}
			}

			if total == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No dynamic or unmapped icons found.")
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "\n%d icon usages need manual review\n", total)
			}
			return nil
		},
	}
	return cmd
}
