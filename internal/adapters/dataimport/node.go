package dataimport

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/sourcerer/internal/core/domain"
	"go.trai.ch/sourcerer/internal/core/ports"
)

// NodeID is the unique identifier for the index client Graft node.
const NodeID graft.ID = "adapter.dataimport"

func init() {
	graft.Register(graft.Node[ports.IndexServiceProvider]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.IndexServiceProvider, error) {
			return func(settings domain.IndexSettings) (ports.IndexService, error) {
				return NewClient(settings)
			}, nil
		},
	})
}
