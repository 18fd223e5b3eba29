package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/haytac/fa2emoji/internal/icons"
)

// NewIconsCmd creates the 'icons' command and its subcommands.
func NewIconsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "icons",
		Short:   "Inspect the icon mapping table",
		Aliases: []string{"icon"},
	}

	cmd.AddCommand(newIconsListCmd())
	cmd.AddCommand(newIconsLookupCmd())

	return cmd
}

func newIconsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all icon classes and their emoji, in precedence order",
		RunE: func(cmd *cobra.Command, args []string) error {
			table := icons.Default()
			for _, m := range table {
				fmt.Fprintf(cmd.OutOrStdout(), "%-28s %s\n", m.Class, m.Emoji)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "\n%d icons mapped\n", len(table))
			return nil
		},
	}
}

func newIconsLookupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lookup <fa-class>",
		Short: "Show the emoji mapped to a single icon class",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			emoji, ok := icons.Default().Lookup(args[0])
			if !ok {
				return fmt.Errorf("no mapping for %q", args[0])
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", args[0], emoji)
			return nil
		},
	}
}
