package shell

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/sourcerer/internal/adapters/logger"
	"go.trai.ch/sourcerer/internal/core/domain"
	"go.trai.ch/sourcerer/internal/core/ports"
)

// NodeID is the unique identifier for the build runner Graft node.
const NodeID graft.ID = "adapter.build_runner"

func init() {
	graft.Register(graft.Node[ports.BuildRunnerProvider]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.BuildRunnerProvider, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return func(settings domain.BuildSettings) ports.BuildRunner {
				return NewRunner(settings, log)
			}, nil
		},
	})
}
