package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/sourcerer/internal/app"
)

func (c *CLI) newCleanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Remove progress stores and workspaces",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			reports, _ := cmd.Flags().GetBool("reports")

			return c.app.Clean(cmd.Context(), app.CleanOptions{
				ConfigPath: configPath(cmd),
				Reports:    reports,
			})
		},
	}

	cmd.Flags().BoolP("reports", "r", false, "Also remove the merged report and the analysis")

	return cmd
}
