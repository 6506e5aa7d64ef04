package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/sourcerer/internal/adapters/catalog"    //nolint:depguard // Wired in app layer
	"go.trai.ch/sourcerer/internal/adapters/config"     //nolint:depguard // Wired in app layer
	"go.trai.ch/sourcerer/internal/adapters/dataimport" //nolint:depguard // Wired in app layer
	"go.trai.ch/sourcerer/internal/adapters/fs"         //nolint:depguard // Wired in app layer
	"go.trai.ch/sourcerer/internal/adapters/logger"     //nolint:depguard // Wired in app layer
	"go.trai.ch/sourcerer/internal/adapters/progress"   //nolint:depguard // Wired in app layer
	"go.trai.ch/sourcerer/internal/adapters/report"     //nolint:depguard // Wired in app layer
	"go.trai.ch/sourcerer/internal/adapters/shell"      //nolint:depguard // Wired in app layer
	"go.trai.ch/sourcerer/internal/adapters/workspace"  //nolint:depguard // Wired in app layer
	"go.trai.ch/sourcerer/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components contains all the initialized application components.
// This struct provides controlled access to components needed by the CLI layer.
type Components struct {
	App    *App
	Logger ports.Logger
}

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			catalog.NodeID,
			logger.NodeID,
			workspace.NodeID,
			shell.NodeID,
			progress.NodeID,
			report.NodeID,
			fs.HasherNodeID,
			dataimport.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: runComponentsNode,
	})
}

//nolint:cyclop // one lookup per dependency
func runAppNode(ctx context.Context) (*App, error) {
	configLoader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	catalogLoader, err := graft.Dep[ports.CatalogLoader](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	ws, err := graft.Dep[ports.WorkspaceManager](ctx)
	if err != nil {
		return nil, err
	}

	runners, err := graft.Dep[ports.BuildRunnerProvider](ctx)
	if err != nil {
		return nil, err
	}

	stores, err := graft.Dep[ports.ProgressStoresProvider](ctx)
	if err != nil {
		return nil, err
	}

	reports, err := graft.Dep[ports.ReportStore](ctx)
	if err != nil {
		return nil, err
	}

	hasher, err := graft.Dep[ports.Hasher](ctx)
	if err != nil {
		return nil, err
	}

	index, err := graft.Dep[ports.IndexServiceProvider](ctx)
	if err != nil {
		return nil, err
	}

	return New(configLoader, catalogLoader, log, ws, runners, stores, reports, hasher, index), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	app, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:    app,
		Logger: log,
	}, nil
}
