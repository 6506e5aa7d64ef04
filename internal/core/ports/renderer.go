package ports

import (
	"time"

	"go.trai.ch/sourcerer/internal/core/domain"
)

// Renderer presents the progress of a compile run.
//
//go:generate mockgen -source=renderer.go -destination=mocks/mock_renderer.go -package=mocks
type Renderer interface {
	// OnTaskStart is called when a span starts.
	OnTaskStart(spanID, parentID, name string, startTime time.Time)
	// OnTaskComplete is called when a span ends. err is non-nil for failed spans.
	OnTaskComplete(spanID string, endTime time.Time, err error)
	// OnProgress reports that worker has processed done of its total ids.
	OnProgress(worker, done, total int)
	// OnSummary reports the merged result of a run.
	OnSummary(summary domain.Summary, elapsed time.Duration)
}
