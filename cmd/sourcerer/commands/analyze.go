package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/sourcerer/internal/app"
)

func (c *CLI) newAnalyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Classify the compiler errors of failed projects",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			report, _ := cmd.Flags().GetString("report")
			output, _ := cmd.Flags().GetString("output")
			workers, _ := cmd.Flags().GetInt("workers")

			return c.app.Analyze(cmd.Context(), app.AnalyzeOptions{
				ConfigPath: configPath(cmd),
				Report:     report,
				Output:     output,
				Workers:    workers,
			})
		},
	}
	cmd.Flags().String("report", "", "Path of the merged report to read")
	cmd.Flags().StringP("output", "o", "", "Path of the analysis to write")
	cmd.Flags().IntP("workers", "w", 0, "Number of workers")
	return cmd
}
