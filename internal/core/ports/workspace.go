package ports

import (
	"context"

	"go.trai.ch/sourcerer/internal/core/domain"
)

//go:generate mockgen -source=workspace.go -destination=mocks/mock_workspace.go -package=mocks

// WorkspaceManager stages projects into a worker's workspace directory.
type WorkspaceManager interface {
	// Reset deletes the directory tree if present and recreates it empty.
	Reset(path string) error
	// Materialize unpacks or copies the project sources into path and writes
	// the generated build descriptors. It returns the descriptor texts.
	Materialize(ctx context.Context, project *domain.ProjectRecord, path string) (domain.BuildFiles, error)
	// Remove deletes the workspace.
	Remove(path string) error
}

// DescriptorRenderer renders the dependency manifest and build descriptor of a project.
type DescriptorRenderer interface {
	Render(project *domain.ProjectRecord) (domain.BuildFiles, error)
}
