package ports

import (
	"context"

	"go.trai.ch/sourcerer/internal/core/domain"
)

//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks

// ProgressStore is the durable outcome log of one worker.
// It has a single writer and needs no locking.
type ProgressStore interface {
	// Bind records the partition the store belongs to. Binding a store that
	// already belongs to another partition fails with domain.ErrPartitionMismatch.
	Bind(ctx context.Context, fingerprint string, ids []string) error
	// Has reports whether an outcome is recorded for id.
	Has(ctx context.Context, id string) (bool, error)
	// Put stages an outcome. It is durable only after Flush.
	Put(ctx context.Context, id string, outcome domain.Outcome) error
	// Flush makes every staged outcome durable.
	Flush() error
	// All returns every recorded outcome.
	All(ctx context.Context) (domain.Report, error)
	// Close releases the store. Staged outcomes that were not flushed are lost.
	Close() error
}

// ProgressStoreFactory opens and deletes the per-worker stores.
type ProgressStoreFactory interface {
	Open(ctx context.Context, worker int) (ProgressStore, error)
	// Remove deletes the store of worker. The store must be closed.
	Remove(worker int) error
}

// ProgressStoresProvider returns the store factory rooted at stateDir.
type ProgressStoresProvider func(stateDir string) ProgressStoreFactory
