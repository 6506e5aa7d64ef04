// Package app implements the application layer for sourcerer.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"go.trai.ch/sourcerer/internal/adapters/linear"
	"go.trai.ch/sourcerer/internal/adapters/telemetry"
	"go.trai.ch/sourcerer/internal/core/domain"
	"go.trai.ch/sourcerer/internal/core/ports"
	"go.trai.ch/sourcerer/internal/engine/orchestrator"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader  ports.ConfigLoader
	catalogLoader ports.CatalogLoader
	logger        ports.Logger
	workspace     ports.WorkspaceManager
	runners       ports.BuildRunnerProvider
	stores        ports.ProgressStoresProvider
	reports       ports.ReportStore
	hasher        ports.Hasher
	index         ports.IndexServiceProvider
	stdout        io.Writer
	stderr        io.Writer
}

// New creates a new App instance.
func New(
	configLoader ports.ConfigLoader,
	catalogLoader ports.CatalogLoader,
	log ports.Logger,
	workspace ports.WorkspaceManager,
	runners ports.BuildRunnerProvider,
	stores ports.ProgressStoresProvider,
	reports ports.ReportStore,
	hasher ports.Hasher,
	index ports.IndexServiceProvider,
) *App {
	return &App{
		configLoader:  configLoader,
		catalogLoader: catalogLoader,
		logger:        log,
		workspace:     workspace,
		runners:       runners,
		stores:        stores,
		reports:       reports,
		hasher:        hasher,
		index:         index,
		stdout:        os.Stdout,
		stderr:        os.Stderr,
	}
}

// WithOutput redirects progress and result output.
// This is primarily used for testing.
func (a *App) WithOutput(stdout, stderr io.Writer) *App {
	a.stdout = stdout
	a.stderr = stderr
	return a
}

// SetJSONLogs switches the logger to JSON output when it supports it.
func (a *App) SetJSONLogs(enable bool) {
	if l, ok := a.logger.(interface{ SetJSON(bool) }); ok {
		l.SetJSON(enable)
	}
}

// CompileOptions configuration for the Compile method.
type CompileOptions struct {
	ConfigPath string
	// Workers, Catalog and Report override the config file when set.
	Workers   int
	Catalog   string
	Report    string
	KeepState bool
	Verbose   bool
}

// Compile builds every cataloged project that has no recorded outcome and
// writes the merged report.
//
// Failed or panicked workers are logged and do not fail the command: their
// progress is kept and a rerun resumes it. Invariant violations and
// interruptions are returned.
func (a *App) Compile(ctx context.Context, opts CompileOptions) error {
	cfg, err := a.configLoader.Load(opts.ConfigPath)
	if err != nil {
		return err
	}
	if opts.Workers != 0 {
		cfg.Workers = opts.Workers
	}
	if opts.Catalog != "" {
		cfg.CatalogPath = opts.Catalog
	}
	if opts.Report != "" {
		cfg.ReportPath = opts.Report
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	catalog, err := a.catalogLoader.Load(ctx, cfg.CatalogPath, cfg.MountRoot)
	if err != nil {
		return err
	}

	// Spans drive the renderer through the bridge.
	renderer := linear.NewRenderer(a.stdout, a.stderr, opts.Verbose)
	tracer := telemetry.NewOTelTracer(telemetry.NewBridge(renderer))
	defer func() {
		_ = tracer.Shutdown(context.WithoutCancel(ctx))
	}()

	orch := orchestrator.New(orchestrator.Options{
		Workers:          cfg.Workers,
		StateDir:         cfg.StateDir,
		ReportPath:       cfg.ReportPath,
		ProgressInterval: cfg.ProgressInterval,
		KeepStores:       opts.KeepState,
	}, orchestrator.Deps{
		Workspace: a.workspace,
		Runner:    a.runners(cfg.Build),
		Stores:    a.stores(cfg.StateDir),
		Reports:   a.reports,
		Hasher:    a.hasher,
		Tracer:    tracer,
		Renderer:  renderer,
		Logger:    a.logger,
	})

	merged, err := orch.Run(ctx, catalog)
	switch {
	case err == nil:
		compiled := orch.Processed()
		a.logger.Info(fmt.Sprintf("compiled %d projects, %d outcomes carried over from progress stores",
			compiled, len(merged)-compiled))
		return nil
	case isInvariantViolation(err), ctx.Err() != nil:
		return err
	case errors.Is(err, domain.ErrWorkerFailed), errors.Is(err, domain.ErrWorkerPanicked):
		a.logger.Error(err)
		a.logger.Warn(fmt.Sprintf("progress kept in %s, rerun with %d workers to resume",
			domain.ProgressDir(cfg.StateDir), cfg.Workers))
		return nil
	default:
		return err
	}
}

func isInvariantViolation(err error) bool {
	return errors.Is(err, domain.ErrPartitionCoverage) ||
		errors.Is(err, domain.ErrPartitionMismatch) ||
		errors.Is(err, domain.ErrDuplicateOutcome)
}

// CleanOptions configuration for the Clean method.
type CleanOptions struct {
	ConfigPath string
	// Reports also removes the merged report and the analysis.
	Reports bool
}

// Clean removes the progress stores and workspaces, and optionally the reports.
func (a *App) Clean(_ context.Context, options CleanOptions) error {
	cfg, err := a.configLoader.Load(options.ConfigPath)
	if err != nil {
		return err
	}

	var errs error

	remove := func(path string, name string) {
		a.logger.Info(fmt.Sprintf("removing %s...", name))
		if err := os.RemoveAll(path); err != nil {
			errs = errors.Join(errs, zerr.With(zerr.Wrap(err, fmt.Sprintf("failed to remove %s", name)), "path", path))
			return
		}
		a.logger.Info(fmt.Sprintf("removed %s", name))
	}

	remove(cfg.StateDir, "compile state")

	if options.Reports {
		remove(cfg.ReportPath, "report")
		remove(cfg.AnalysisPath, "analysis")
	}

	return errs
}
