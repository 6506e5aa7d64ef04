package workspace

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/sourcerer/internal/adapters/descriptor"
	"go.trai.ch/sourcerer/internal/adapters/fs"
	"go.trai.ch/sourcerer/internal/core/ports"
)

// NodeID is the unique identifier for the workspace manager Graft node.
const NodeID graft.ID = "adapter.workspace"

func init() {
	graft.Register(graft.Node[ports.WorkspaceManager]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{descriptor.NodeID, fs.WalkerNodeID},
		Run: func(ctx context.Context) (ports.WorkspaceManager, error) {
			renderer, err := graft.Dep[ports.DescriptorRenderer](ctx)
			if err != nil {
				return nil, err
			}
			walker, err := graft.Dep[*fs.Walker](ctx)
			if err != nil {
				return nil, err
			}
			return NewManager(renderer, walker), nil
		},
	})
}
