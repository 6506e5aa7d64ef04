package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/sourcerer/internal/app"
	"go.trai.ch/sourcerer/internal/core/domain"
)

func (c *CLI) newIndexCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "index",
		Short: "Control imports on the indexing service",
		Args:  cobra.NoArgs,
	}
	cmd.AddCommand(c.newIndexImportCmd())
	cmd.AddCommand(c.newIndexStatusCmd())
	cmd.AddCommand(c.newIndexAbortCmd())
	return cmd
}

func (c *CLI) newIndexImportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Start a full import",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			start, _ := cmd.Flags().GetInt("start")
			end, _ := cmd.Flags().GetInt("end")
			project, _ := cmd.Flags().GetString("project")
			clean, _ := cmd.Flags().GetBool("clean")
			commit, _ := cmd.Flags().GetBool("commit")
			wait, _ := cmd.Flags().GetBool("wait")

			return c.app.IndexImport(cmd.Context(), app.IndexImportOptions{
				ConfigPath: configPath(cmd),
				Request: domain.ImportRequest{
					Start:     start,
					End:       end,
					ProjectID: project,
					Clean:     clean,
					Commit:    commit,
				},
				Wait: wait,
			})
		},
	}
	cmd.Flags().Int("start", 0, "First project id of the range")
	cmd.Flags().Int("end", 0, "Last project id of the range")
	cmd.Flags().String("project", "", "Import a single project")
	cmd.Flags().Bool("clean", false, "Clear the index before importing")
	cmd.Flags().Bool("commit", true, "Commit when the import finishes")
	cmd.Flags().Bool("wait", false, "Poll until the import completes")
	return cmd
}

func (c *CLI) newIndexStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Print the state of the current import",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.IndexStatus(cmd.Context(), configPath(cmd))
		},
	}
}

func (c *CLI) newIndexAbortCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "abort",
		Short: "Abort the current import",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.IndexAbort(cmd.Context(), configPath(cmd))
		},
	}
}
