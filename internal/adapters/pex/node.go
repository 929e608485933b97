package pex

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/pexwrap/internal/adapters/fs"
	"go.trai.ch/pexwrap/internal/core/ports"
)

// NodeID is the unique identifier for the archive builder Graft node.
const NodeID graft.ID = "adapter.pex_builder"

func init() {
	graft.Register(graft.Node[ports.ArchiveBuilder]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fs.WalkerNodeID, fs.HasherNodeID},
		Run: func(ctx context.Context) (ports.ArchiveBuilder, error) {
			walker, err := graft.Dep[*fs.Walker](ctx)
			if err != nil {
				return nil, err
			}
			hasher, err := graft.Dep[ports.Hasher](ctx)
			if err != nil {
				return nil, err
			}
			return NewBuilder(walker, hasher), nil
		},
	})
}
