// Package orchestrator drives a fixed pool of compile workers over a project catalog.
package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"go.trai.ch/sourcerer/internal/core/domain"
	"go.trai.ch/sourcerer/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Options configures one run.
type Options struct {
	Workers  int
	StateDir string
	// ReportPath is where the merged report is written. Empty skips writing.
	ReportPath       string
	ProgressInterval int
	// KeepStores keeps the partition stores after a successful merge.
	KeepStores bool
}

// Deps are the collaborators of the orchestrator.
type Deps struct {
	Workspace ports.WorkspaceManager
	Runner    ports.BuildRunner
	Stores    ports.ProgressStoreFactory
	Reports   ports.ReportStore
	Hasher    ports.Hasher
	Tracer    ports.Tracer
	Renderer  ports.Renderer
	Logger    ports.Logger
}

// Orchestrator partitions a catalog across workers, runs them to completion
// and merges their progress stores into one report.
type Orchestrator struct {
	deps Deps
	opts Options

	// processed counts recorded outcomes across all workers.
	processed atomic.Int64
}

// New creates an Orchestrator.
func New(opts Options, deps Deps) *Orchestrator {
	if opts.ProgressInterval < 1 {
		opts.ProgressInterval = domain.DefaultProgressInterval
	}
	return &Orchestrator{deps: deps, opts: opts}
}

// Processed returns the number of outcomes recorded by the last run.
func (o *Orchestrator) Processed() int {
	return int(o.processed.Load())
}

// Run compiles every project of the catalog that has no recorded outcome yet
// and returns the merged report.
//
// Worker failures and cancellation leave the progress stores in place so a
// rerun with the same worker count resumes where the workers stopped.
func (o *Orchestrator) Run(ctx context.Context, catalog *domain.Catalog) (domain.Report, error) {
	start := time.Now()
	ctx, span := o.deps.Tracer.Start(ctx, "compile")
	defer span.End()

	report, err := o.run(ctx, catalog, start)
	if err != nil {
		span.RecordError(err)
	}
	return report, err
}

func (o *Orchestrator) run(ctx context.Context, catalog *domain.Catalog, start time.Time) (domain.Report, error) {
	ids := catalog.IDs()
	parts, err := domain.PartitionIDs(ids, o.opts.Workers)
	if err != nil {
		return nil, err
	}
	if err := domain.VerifyCoverage(ids, parts); err != nil {
		return nil, err
	}

	stores, err := o.openStores(ctx, parts)
	if err != nil {
		return nil, err
	}

	o.deps.Logger.Info(fmt.Sprintf("compiling %d projects with %d workers", len(ids), len(parts)))
	o.processed.Store(0)

	// Each worker owns exactly one slot.
	slots := make([]error, len(parts))
	var g errgroup.Group
	for i, part := range parts {
		g.Go(func() error {
			slots[i] = o.safeWorker(ctx, catalog, part, stores[i])
			return nil
		})
	}
	_ = g.Wait()

	workerErr := errors.Join(slots...)
	if ctx.Err() != nil || workerErr != nil {
		closeErr := closeStores(stores)
		if ctx.Err() != nil {
			workerErr = errors.Join(domain.Because(domain.ErrRunIncomplete, ctx.Err()), workerErr)
		}
		return nil, errors.Join(workerErr, closeErr)
	}

	merged, err := o.merge(ctx, ids, stores)
	if err != nil {
		return nil, errors.Join(err, closeStores(stores))
	}

	if o.opts.ReportPath != "" {
		if err := o.deps.Reports.WriteReport(o.opts.ReportPath, merged); err != nil {
			return nil, errors.Join(err, closeStores(stores))
		}
		o.deps.Logger.Info(fmt.Sprintf("wrote report for %d projects to %s", len(merged), o.opts.ReportPath))
	}

	if err := closeStores(stores); err != nil {
		return nil, err
	}
	if !o.opts.KeepStores {
		for _, p := range parts {
			if err := o.deps.Stores.Remove(p.Worker); err != nil {
				return nil, err
			}
		}
	}

	o.deps.Renderer.OnSummary(merged.Summary(), time.Since(start))
	return merged, nil
}

// openStores opens and binds one store per partition. Any mismatch aborts the
// run before a worker starts.
func (o *Orchestrator) openStores(ctx context.Context, parts []domain.Partition) ([]ports.ProgressStore, error) {
	stores := make([]ports.ProgressStore, 0, len(parts))
	for _, p := range parts {
		s, err := o.deps.Stores.Open(ctx, p.Worker)
		if err != nil {
			return nil, errors.Join(err, closeStores(stores))
		}
		stores = append(stores, s)

		if err := s.Bind(ctx, o.deps.Hasher.Fingerprint(p.IDs), p.IDs); err != nil {
			return nil, errors.Join(domain.WithMeta(err, "worker", p.Worker), closeStores(stores))
		}
	}
	return stores, nil
}

// merge unions the stores and checks that every catalog id has exactly one outcome.
func (o *Orchestrator) merge(ctx context.Context, ids []string, stores []ports.ProgressStore) (domain.Report, error) {
	parts := make([]domain.Report, len(stores))
	for i, s := range stores {
		r, err := s.All(ctx)
		if err != nil {
			return nil, domain.WithMeta(err, "worker", i)
		}
		parts[i] = r
	}

	merged, err := domain.MergeReports(parts...)
	if err != nil {
		return nil, err
	}

	for _, id := range ids {
		if _, ok := merged[id]; !ok {
			return nil, domain.WithMeta(domain.ErrPartitionCoverage, "missing_id", id)
		}
	}
	if len(merged) != len(ids) {
		known := make(map[string]struct{}, len(ids))
		for _, id := range ids {
			known[id] = struct{}{}
		}
		for id := range merged {
			if _, ok := known[id]; !ok {
				return nil, domain.WithMeta(domain.ErrPartitionCoverage, "unknown_id", id)
			}
		}
	}
	return merged, nil
}

// safeWorker runs one worker and converts its failure or panic into an error
// tagged with the worker id. Stopping because of cancellation is not a failure.
func (o *Orchestrator) safeWorker(
	ctx context.Context,
	catalog *domain.Catalog,
	part domain.Partition,
	store ports.ProgressStore,
) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = zerr.With(domain.Because(domain.ErrWorkerPanicked, zerr.New(fmt.Sprint(r))), "worker", part.Worker)
		}
	}()

	if err := o.runWorker(ctx, catalog, part, store); err != nil {
		if ctx.Err() != nil {
			return nil
		}
		return zerr.With(domain.Because(domain.ErrWorkerFailed, err), "worker", part.Worker)
	}
	return nil
}

func (o *Orchestrator) runWorker(
	ctx context.Context,
	catalog *domain.Catalog,
	part domain.Partition,
	store ports.ProgressStore,
) error {
	ws := domain.WorkspacePath(o.opts.StateDir, part.Worker)
	if err := o.deps.Workspace.Reset(ws); err != nil {
		return err
	}

	total := len(part.IDs)
	done := 0
	for _, id := range part.IDs {
		if err := ctx.Err(); err != nil {
			return err
		}

		has, err := store.Has(ctx, id)
		if err != nil {
			return err
		}
		if has {
			continue
		}

		recorded, err := o.compile(ctx, catalog, part.Worker, id, store, ws)
		if err != nil {
			return err
		}
		if !recorded {
			return ctx.Err()
		}

		done++
		o.processed.Add(1)
		if done%o.opts.ProgressInterval == 0 {
			o.deps.Renderer.OnProgress(part.Worker, done, total)
		}
	}
	if done%o.opts.ProgressInterval != 0 {
		o.deps.Renderer.OnProgress(part.Worker, done, total)
	}

	return o.deps.Workspace.Remove(ws)
}

// compile stages, builds and records one project. It reports false when the
// attempt was interrupted by cancellation and nothing was recorded.
func (o *Orchestrator) compile(
	ctx context.Context,
	catalog *domain.Catalog,
	worker int,
	id string,
	store ports.ProgressStore,
	ws string,
) (bool, error) {
	project, ok := catalog.Get(id)
	if !ok {
		return false, domain.WithMeta(domain.ErrPartitionCoverage, "unknown_id", id)
	}

	ctx, span := o.deps.Tracer.Start(ctx, "project "+id)
	defer span.End()
	span.SetAttribute("project.id", id)
	span.SetAttribute("project.name", project.Name)
	span.SetAttribute("worker", worker)

	span.SetAttribute("project.state", domain.StateStaging)
	files, err := o.deps.Workspace.Materialize(ctx, &project, ws)

	var result domain.BuildResult
	if err != nil {
		if ctx.Err() != nil {
			return false, nil
		}
		result = domain.BuildResult{Output: err.Error(), ExitCode: -1}
	} else {
		span.SetAttribute("project.state", domain.StateCompiling)
		result = o.deps.Runner.Compile(ctx, ws)
		if ctx.Err() != nil {
			return false, nil
		}
	}

	outcome := domain.NewOutcome(files, result.Success, result.Output)
	span.SetAttribute("success", result.Success)
	if result.Success {
		span.SetAttribute("project.state", domain.StateSucceeded)
	} else {
		span.SetAttribute("project.state", domain.StateFailed)
		span.SetAttribute("exit_code", result.ExitCode)
		span.RecordError(zerr.New(failureSummary(result)))
	}

	if err := store.Put(ctx, id, outcome); err != nil {
		return false, err
	}
	if err := store.Flush(); err != nil {
		return false, err
	}
	span.SetAttribute("project.state", domain.StateRecorded)

	if err := o.deps.Workspace.Reset(ws); err != nil {
		return false, err
	}
	return true, nil
}

func failureSummary(r domain.BuildResult) string {
	if r.ExitCode > 0 {
		return fmt.Sprintf("build failed with exit code %d", r.ExitCode)
	}
	line, _, _ := strings.Cut(strings.TrimSpace(r.Output), "\n")
	if line == "" {
		return "build failed"
	}
	return line
}

func closeStores(stores []ports.ProgressStore) error {
	var errs []error
	for _, s := range stores {
		if err := s.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
