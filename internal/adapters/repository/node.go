package repository

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/pexwrap/internal/core/ports"
)

// NodeID is the unique identifier for the repository factory Graft node.
const NodeID graft.ID = "adapter.repository_factory"

func init() {
	graft.Register(graft.Node[ports.RepositoryFactory]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.RepositoryFactory, error) {
			return NewFactory(NewHTTPClient()), nil
		},
	})
}
