//go:build cgo_sqlite

package progress

// The cgo_sqlite tag switches to the C SQLite driver.
//
//	CGO_ENABLED=1 go build -tags cgo_sqlite ./...

import (
	_ "github.com/mattn/go-sqlite3"
)

const (
	// DriverName is the database/sql driver backing the store.
	DriverName = "sqlite3"

	// BuildMode describes the current driver configuration.
	BuildMode = "cgo"
)
