package ports

import (
	"context"

	"go.trai.ch/sourcerer/internal/core/domain"
)

// BuildRunner runs the external build tool against a staged workspace.
//
//go:generate mockgen -source=builder.go -destination=mocks/mock_builder.go -package=mocks
type BuildRunner interface {
	// Compile blocks until the build tool exits. Failures to start the tool
	// are reported as unsuccessful results, never as errors.
	Compile(ctx context.Context, workspace string) domain.BuildResult
}

// BuildRunnerProvider builds a runner for the configured build tool.
type BuildRunnerProvider func(settings domain.BuildSettings) BuildRunner
