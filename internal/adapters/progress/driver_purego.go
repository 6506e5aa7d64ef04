//go:build !cgo_sqlite

package progress

// The default build uses the pure Go SQLite driver and needs no C toolchain.
//
//	CGO_ENABLED=0 go build ./...

import (
	_ "modernc.org/sqlite"
)

const (
	// DriverName is the database/sql driver backing the store.
	DriverName = "sqlite"

	// BuildMode describes the current driver configuration.
	BuildMode = "purego"
)
