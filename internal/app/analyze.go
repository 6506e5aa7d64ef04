package app

import (
	"cmp"
	"context"
	"fmt"
	"maps"
	"slices"

	"go.trai.ch/sourcerer/internal/adapters/telemetry"
	"go.trai.ch/sourcerer/internal/engine/analyzer"
)

// AnalyzeOptions configuration for the Analyze method.
type AnalyzeOptions struct {
	ConfigPath string
	// Report and Output override the config file when set.
	Report  string
	Output  string
	Workers int
}

// Analyze classifies the compiler errors of every failed project in the
// merged report, writes them out and prints an error-type histogram.
func (a *App) Analyze(ctx context.Context, opts AnalyzeOptions) error {
	cfg, err := a.configLoader.Load(opts.ConfigPath)
	if err != nil {
		return err
	}
	if opts.Report != "" {
		cfg.ReportPath = opts.Report
	}
	if opts.Output != "" {
		cfg.AnalysisPath = opts.Output
	}
	if opts.Workers != 0 {
		cfg.Workers = opts.Workers
	}

	report, err := a.reports.ReadReport(cfg.ReportPath)
	if err != nil {
		return err
	}

	tracer := telemetry.NewOTelTracer()
	defer func() {
		_ = tracer.Shutdown(context.WithoutCancel(ctx))
	}()

	analysis, err := analyzer.New(cfg.Workers, tracer).Analyze(ctx, report)
	if err != nil {
		return err
	}
	if err := a.reports.WriteAnalysis(cfg.AnalysisPath, analysis); err != nil {
		return err
	}
	a.logger.Info(fmt.Sprintf("analyzed %d failed projects into %s", len(analysis), cfg.AnalysisPath))

	hist := analysis.Histogram()
	types := slices.SortedFunc(maps.Keys(hist), func(x, y string) int {
		if c := cmp.Compare(hist[y], hist[x]); c != 0 {
			return c
		}
		return cmp.Compare(x, y)
	})
	for _, t := range types {
		_, _ = fmt.Fprintf(a.stdout, "%7d  %s\n", hist[t], t)
	}
	return nil
}
