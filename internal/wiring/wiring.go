// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/sourcerer/internal/adapters/catalog"
	_ "go.trai.ch/sourcerer/internal/adapters/config"
	_ "go.trai.ch/sourcerer/internal/adapters/dataimport"
	_ "go.trai.ch/sourcerer/internal/adapters/descriptor"
	_ "go.trai.ch/sourcerer/internal/adapters/fs"
	_ "go.trai.ch/sourcerer/internal/adapters/logger"
	_ "go.trai.ch/sourcerer/internal/adapters/progress"
	_ "go.trai.ch/sourcerer/internal/adapters/report"
	_ "go.trai.ch/sourcerer/internal/adapters/shell"
	_ "go.trai.ch/sourcerer/internal/adapters/workspace"
	// Register app nodes.
	_ "go.trai.ch/sourcerer/internal/app"
)
