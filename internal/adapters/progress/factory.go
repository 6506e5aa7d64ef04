package progress

import (
	"context"
	"errors"
	"os"

	"go.trai.ch/sourcerer/internal/core/domain"
	"go.trai.ch/sourcerer/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ProgressStoreFactory = (*Factory)(nil)

// Factory opens the per-worker stores below a state directory.
type Factory struct {
	stateDir string
}

// NewFactory creates a factory rooted at stateDir.
func NewFactory(stateDir string) *Factory {
	return &Factory{stateDir: stateDir}
}

// Open opens the store of worker.
//
//nolint:ireturn // satisfies ports.ProgressStoreFactory
func (f *Factory) Open(ctx context.Context, worker int) (ports.ProgressStore, error) {
	s, err := Open(ctx, domain.StorePath(f.stateDir, worker))
	if err != nil {
		return nil, zerr.With(err, "worker", worker)
	}
	return s, nil
}

// Remove deletes the database of worker together with its WAL files.
func (f *Factory) Remove(worker int) error {
	path := domain.StorePath(f.stateDir, worker)
	for _, p := range []string{path, path + "-wal", path + "-shm"} {
		if err := os.Remove(p); err != nil && !errors.Is(err, os.ErrNotExist) {
			return zerr.With(zerr.Wrap(err, domain.ErrStoreRemoveFailed.Error()), "path", p)
		}
	}
	return nil
}
