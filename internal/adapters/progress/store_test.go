package progress_test

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/sourcerer/internal/adapters/progress"
	"go.trai.ch/sourcerer/internal/core/domain"
)

var (
	okOutcome   = domain.NewOutcome(domain.BuildFiles{Manifest: "<ivy/>", Descriptor: "<project/>"}, true, "ignored")
	failOutcome = domain.NewOutcome(domain.BuildFiles{Manifest: "<ivy/>", Descriptor: "<project/>"}, false, "BUILD FAILED\n")
)

func openStore(t *testing.T, path string) *progress.Store {
	t.Helper()
	s, err := progress.Open(context.Background(), path)
	require.NoError(t, err)
	return s
}

func TestStore_PutFlushAll(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "progress", "worker-0.db")
	s := openStore(t, path)
	defer func() { _ = s.Close() }()

	has, err := s.Has(ctx, "1")
	require.NoError(t, err)
	assert.False(t, has)

	require.NoError(t, s.Put(ctx, "1", okOutcome))
	require.NoError(t, s.Put(ctx, "2", failOutcome))

	has, err = s.Has(ctx, "1")
	require.NoError(t, err)
	assert.True(t, has, "staged outcomes are visible to the writer")

	require.NoError(t, s.Flush())
	require.NoError(t, s.Flush(), "flushing with nothing staged is a no-op")

	all, err := s.All(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.Report{"1": okOutcome, "2": failOutcome}, all)
	assert.Empty(t, all["1"].Output)
}

func TestStore_PutTwice(t *testing.T) {
	ctx := context.Background()
	s := openStore(t, filepath.Join(t.TempDir(), "worker-0.db"))
	defer func() { _ = s.Close() }()

	require.NoError(t, s.Put(ctx, "1", okOutcome))
	err := s.Put(ctx, "1", failOutcome)
	assert.True(t, errors.Is(err, domain.ErrOutcomeExists))

	require.NoError(t, s.Flush())
	err = s.Put(ctx, "1", failOutcome)
	assert.True(t, errors.Is(err, domain.ErrOutcomeExists))
}

func TestStore_UnflushedLostOnReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "worker-0.db")

	s := openStore(t, path)
	require.NoError(t, s.Put(ctx, "durable", okOutcome))
	require.NoError(t, s.Flush())
	require.NoError(t, s.Put(ctx, "staged", failOutcome))
	require.NoError(t, s.Close())

	s = openStore(t, path)
	defer func() { _ = s.Close() }()

	has, err := s.Has(ctx, "durable")
	require.NoError(t, err)
	assert.True(t, has)

	has, err = s.Has(ctx, "staged")
	require.NoError(t, err)
	assert.False(t, has)
}

func TestStore_Bind(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "worker-0.db")

	s := openStore(t, path)
	require.NoError(t, s.Bind(ctx, "aaaa", []string{"1", "3"}))
	require.NoError(t, s.Bind(ctx, "aaaa", []string{"1", "3"}))
	require.NoError(t, s.Close())

	s = openStore(t, path)
	defer func() { _ = s.Close() }()
	require.NoError(t, s.Bind(ctx, "aaaa", []string{"1", "3"}))

	err := s.Bind(ctx, "bbbb", []string{"1", "2"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrPartitionMismatch))
}

func TestStore_RejectsNewerSchema(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "worker-0.db")
	require.NoError(t, openStore(t, path).Close())

	db, err := sql.Open(progress.DriverName, path)
	require.NoError(t, err)
	_, err = db.ExecContext(ctx, `UPDATE meta SET value = '9.0.0' WHERE key = 'schema_version'`)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	_, err = progress.Open(ctx, path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrStoreMigrationFailed))
}

func TestFactory_OpenRemove(t *testing.T) {
	ctx := context.Background()
	stateDir := t.TempDir()
	f := progress.NewFactory(stateDir)

	s0, err := f.Open(ctx, 0)
	require.NoError(t, err)
	s1, err := f.Open(ctx, 1)
	require.NoError(t, err)

	require.NoError(t, s0.Put(ctx, "a", okOutcome))
	require.NoError(t, s0.Flush())
	require.NoError(t, s1.Put(ctx, "b", failOutcome))
	require.NoError(t, s1.Flush())

	r1, err := s1.All(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"b"}, r1.IDs(), "workers never share a store")

	require.NoError(t, s0.Close())
	require.NoError(t, s1.Close())

	path := domain.StorePath(stateDir, 0)
	assert.FileExists(t, path)
	require.NoError(t, f.Remove(0))
	for _, p := range []string{path, path + "-wal", path + "-shm"} {
		_, err := os.Stat(p)
		assert.True(t, errors.Is(err, os.ErrNotExist), p)
	}
	assert.FileExists(t, domain.StorePath(stateDir, 1))

	require.NoError(t, f.Remove(7), "removing a missing store is not an error")
}
