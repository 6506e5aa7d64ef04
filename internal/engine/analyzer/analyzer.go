// Package analyzer classifies the compiler errors of failed projects.
package analyzer

import (
	"context"
	"maps"

	"go.trai.ch/sourcerer/internal/core/domain"
	"go.trai.ch/sourcerer/internal/core/ports"
	"golang.org/x/sync/errgroup"
)

// Analyzer splits the failed projects of a report across workers and
// classifies their build output.
type Analyzer struct {
	workers int
	tracer  ports.Tracer
}

// New creates an Analyzer running the given number of workers.
func New(workers int, tracer ports.Tracer) *Analyzer {
	return &Analyzer{workers: workers, tracer: tracer}
}

// Analyze returns the classified errors of every failed project in report.
func (a *Analyzer) Analyze(ctx context.Context, report domain.Report) (domain.Analysis, error) {
	ctx, span := a.tracer.Start(ctx, "analyze")
	defer span.End()

	failed := make([]string, 0, len(report))
	for _, id := range report.IDs() {
		if !report[id].Success {
			failed = append(failed, id)
		}
	}
	span.SetAttribute("projects.failed", len(failed))

	parts, err := domain.PartitionIDs(failed, a.workers)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	// Each goroutine writes only its own slot.
	results := make([]domain.Analysis, len(parts))
	g, ctx := errgroup.WithContext(ctx)
	for i, part := range parts {
		g.Go(func() error {
			local := make(domain.Analysis, len(part.IDs))
			for _, id := range part.IDs {
				if err := ctx.Err(); err != nil {
					return err
				}
				local[id] = Extract(report[id].Output)
			}
			results[i] = local
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		span.RecordError(err)
		return nil, err
	}

	analysis := make(domain.Analysis, len(failed))
	for _, r := range results {
		maps.Copy(analysis, r)
	}
	return analysis, nil
}
