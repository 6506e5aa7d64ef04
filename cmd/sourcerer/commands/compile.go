package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/sourcerer/internal/app"
)

func (c *CLI) newCompileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compile",
		Short: "Compile every cataloged project and write the outcome report",
		Long: `Compile splits the catalog across a fixed number of workers. Each worker
records every outcome before moving on, so an interrupted run resumes where it
stopped when started again with the same worker count.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			workers, _ := cmd.Flags().GetInt("workers")
			catalog, _ := cmd.Flags().GetString("catalog")
			report, _ := cmd.Flags().GetString("report")
			keepState, _ := cmd.Flags().GetBool("keep-state")
			verbose, _ := cmd.Flags().GetBool("verbose")

			return c.app.Compile(cmd.Context(), app.CompileOptions{
				ConfigPath: configPath(cmd),
				Workers:    workers,
				Catalog:    catalog,
				Report:     report,
				KeepState:  keepState,
				Verbose:    verbose,
			})
		},
	}
	cmd.Flags().IntP("workers", "w", 0, "Number of workers (overrides the config file)")
	cmd.Flags().String("catalog", "", "Path to the project catalog (overrides the config file)")
	cmd.Flags().StringP("report", "o", "", "Path of the merged report (overrides the config file)")
	cmd.Flags().Bool("keep-state", false, "Keep the partition stores after the report is written")
	cmd.Flags().BoolP("verbose", "v", false, "Print every project as it starts and completes")
	return cmd
}
