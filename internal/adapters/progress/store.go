// Package progress persists per-worker compile outcomes in SQLite.
package progress

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"go.trai.ch/sourcerer/internal/core/domain"
	"go.trai.ch/sourcerer/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ProgressStore = (*Store)(nil)

// Store is the progress store of one worker. Put stages outcomes in an open
// write transaction that Flush commits, so an outcome is either fully durable
// or absent after a crash.
type Store struct {
	db   *sql.DB
	tx   *sql.Tx
	path string
}

// Open opens or creates the store at path and migrates its schema.
func Open(ctx context.Context, path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), domain.DirPerm); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreOpenFailed.Error()), "path", path)
	}

	db, err := openDatabase(ctx, path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreOpenFailed.Error()), "path", path)
	}
	if err := migrate(ctx, db); err != nil {
		_ = db.Close()
		return nil, zerr.With(err, "path", path)
	}
	return &Store{db: db, path: path}, nil
}

func openDatabase(ctx context.Context, path string) (*sql.DB, error) {
	db, err := sql.Open(DriverName, path)
	if err != nil {
		return nil, err
	}

	// Pragmas are per connection; a single long-lived connection keeps them.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=FULL",
		"PRAGMA busy_timeout=5000",
	} {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			_ = db.Close()
			return nil, zerr.With(zerr.Wrap(err, "failed to apply pragma"), "pragma", pragma)
		}
	}
	return db, nil
}

// Path returns the database file of the store.
func (s *Store) Path() string {
	return s.path
}

func (s *Store) querier() querier {
	if s.tx != nil {
		return s.tx
	}
	return s.db
}

// Bind records the partition fingerprint on first use and rejects a store
// that was bound to a different partition.
func (s *Store) Bind(ctx context.Context, fingerprint string, ids []string) error {
	q := s.querier()

	existing, err := readMeta(ctx, q, metaFingerprint)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		encoded, err := json.Marshal(ids)
		if err != nil {
			return zerr.Wrap(err, domain.ErrStoreWriteFailed.Error())
		}
		if err := writeMeta(ctx, q, metaFingerprint, fingerprint); err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "path", s.path)
		}
		if err := writeMeta(ctx, q, metaPartition, string(encoded)); err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "path", s.path)
		}
		return nil
	case err != nil:
		return zerr.With(zerr.Wrap(err, domain.ErrStoreReadFailed.Error()), "path", s.path)
	case existing != fingerprint:
		err := domain.WithMeta(domain.ErrPartitionMismatch, "path", s.path)
		return zerr.With(zerr.With(err, "stored", existing), "expected", fingerprint)
	default:
		return nil
	}
}

// Has reports whether an outcome is recorded or staged for id.
func (s *Store) Has(ctx context.Context, id string) (bool, error) {
	var one int
	err := s.querier().QueryRowContext(ctx, `SELECT 1 FROM outcomes WHERE id = ?`, id).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, zerr.With(zerr.Wrap(err, domain.ErrStoreReadFailed.Error()), "project", id)
	}
	return true, nil
}

// Put stages the outcome of id. An id is written at most once.
func (s *Store) Put(ctx context.Context, id string, outcome domain.Outcome) error {
	exists, err := s.Has(ctx, id)
	if err != nil {
		return err
	}
	if exists {
		return zerr.With(domain.WithMeta(domain.ErrOutcomeExists, "project", id), "path", s.path)
	}

	if s.tx == nil {
		tx, err := s.db.BeginTx(ctx, nil)
		if err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "path", s.path)
		}
		s.tx = tx
	}

	_, err = s.tx.ExecContext(ctx,
		`INSERT INTO outcomes (id, ivyfile, buildfile, success, output) VALUES (?, ?, ?, ?, ?)`,
		id, outcome.BuildFiles.Manifest, outcome.BuildFiles.Descriptor, outcome.Success, outcome.Output)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "project", id)
	}
	return nil
}

// Flush commits every staged outcome.
func (s *Store) Flush() error {
	if s.tx == nil {
		return nil
	}
	tx := s.tx
	s.tx = nil
	if err := tx.Commit(); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreFlushFailed.Error()), "path", s.path)
	}
	return nil
}

// All returns every recorded outcome.
func (s *Store) All(ctx context.Context) (domain.Report, error) {
	rows, err := s.querier().QueryContext(ctx,
		`SELECT id, ivyfile, buildfile, success, output FROM outcomes ORDER BY id`)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreReadFailed.Error()), "path", s.path)
	}
	defer func() { _ = rows.Close() }()

	report := make(domain.Report)
	for rows.Next() {
		var (
			id string
			o  domain.Outcome
		)
		if err := rows.Scan(&id, &o.BuildFiles.Manifest, &o.BuildFiles.Descriptor, &o.Success, &o.Output); err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreReadFailed.Error()), "path", s.path)
		}
		report[id] = o
	}
	if err := rows.Err(); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreReadFailed.Error()), "path", s.path)
	}
	return report, nil
}

// Close discards staged outcomes and closes the database.
func (s *Store) Close() error {
	if s.tx != nil {
		_ = s.tx.Rollback()
		s.tx = nil
	}
	if err := s.db.Close(); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to close progress store"), "path", s.path)
	}
	return nil
}
