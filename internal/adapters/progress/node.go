package progress

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/sourcerer/internal/core/ports"
)

// NodeID is the unique identifier for the progress store Graft node.
const NodeID graft.ID = "adapter.progress"

func init() {
	graft.Register(graft.Node[ports.ProgressStoresProvider]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ProgressStoresProvider, error) {
			return func(stateDir string) ports.ProgressStoreFactory {
				return NewFactory(stateDir)
			}, nil
		},
	})
}
