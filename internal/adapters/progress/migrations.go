package progress

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Masterminds/semver/v3"
	"go.trai.ch/sourcerer/internal/core/domain"
	"go.trai.ch/zerr"
)

// SchemaVersion is the newest schema this build understands.
const SchemaVersion = "1.0.0"

const (
	metaSchemaVersion = "schema_version"
	metaFingerprint   = "fingerprint"
	metaPartition     = "partition"
)

type migration struct {
	Version string
	Up      string
}

var migrations = []migration{
	{
		Version: "1.0.0",
		Up: `
CREATE TABLE IF NOT EXISTS outcomes (
	id        TEXT PRIMARY KEY,
	ivyfile   TEXT NOT NULL,
	buildfile TEXT NOT NULL,
	success   INTEGER NOT NULL,
	output    TEXT NOT NULL
);`,
	},
}

const createMeta = `CREATE TABLE IF NOT EXISTS meta (key TEXT PRIMARY KEY, value TEXT NOT NULL)`

// migrate brings the schema up to SchemaVersion. A store written by a newer
// build is refused.
func migrate(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, createMeta); err != nil {
		return zerr.Wrap(err, domain.ErrStoreMigrationFailed.Error())
	}

	current := semver.MustParse("0.0.0")
	raw, err := readMeta(ctx, db, metaSchemaVersion)
	switch {
	case errors.Is(err, sql.ErrNoRows):
	case err != nil:
		return zerr.Wrap(err, domain.ErrStoreMigrationFailed.Error())
	default:
		current, err = semver.NewVersion(raw)
		if err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrStoreMigrationFailed.Error()), "version", raw)
		}
	}

	if current.GreaterThan(semver.MustParse(SchemaVersion)) {
		return zerr.With(domain.WithMeta(domain.ErrStoreMigrationFailed, "version", current.String()), "supported", SchemaVersion)
	}

	for _, m := range migrations {
		v, err := semver.NewVersion(m.Version)
		if err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrStoreMigrationFailed.Error()), "version", m.Version)
		}
		if !current.LessThan(v) {
			continue
		}

		if err := applyMigration(ctx, db, m); err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrStoreMigrationFailed.Error()), "version", m.Version)
		}
		current = v
	}
	return nil
}

func applyMigration(ctx context.Context, db *sql.DB, m migration) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, m.Up); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := writeMeta(ctx, tx, metaSchemaVersion, m.Version); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

// querier is satisfied by *sql.DB and *sql.Tx.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func readMeta(ctx context.Context, q querier, key string) (string, error) {
	var value string
	err := q.QueryRowContext(ctx, `SELECT value FROM meta WHERE key = ?`, key).Scan(&value)
	return value, err
}

func writeMeta(ctx context.Context, q querier, key, value string) error {
	_, err := q.ExecContext(ctx,
		`INSERT INTO meta (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value)
	return err
}
