package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/pexwrap/internal/core/ports"
)

const (
	// WalkerNodeID is the Graft node for the concrete Walker.
	WalkerNodeID graft.ID = "adapter.fs.walker"
	// ResolverNodeID is the Graft node for the symlink resolver.
	ResolverNodeID graft.ID = "adapter.fs.resolver"
	// HasherNodeID is the Graft node for the hasher.
	HasherNodeID graft.ID = "adapter.fs.hasher"
	// LocatorNodeID is the Graft node for the binary locator.
	LocatorNodeID graft.ID = "adapter.fs.locator"
	// PublisherNodeID is the Graft node for the atomic publisher.
	PublisherNodeID graft.ID = "adapter.fs.publisher"
)

func init() {
	graft.Register(graft.Node[*Walker]{
		ID:        WalkerNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Walker, error) {
			return NewWalker(), nil
		},
	})

	graft.Register(graft.Node[ports.PathResolver]{
		ID:        ResolverNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.PathResolver, error) {
			return NewResolver(), nil
		},
	})

	graft.Register(graft.Node[ports.Hasher]{
		ID:        HasherNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{WalkerNodeID},
		Run: func(ctx context.Context) (ports.Hasher, error) {
			walker, err := graft.Dep[*Walker](ctx)
			if err != nil {
				return nil, err
			}
			return NewHasher(walker), nil
		},
	})

	graft.Register(graft.Node[ports.BinaryLocator]{
		ID:        LocatorNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.BinaryLocator, error) {
			return NewLocator(), nil
		},
	})

	graft.Register(graft.Node[ports.Publisher]{
		ID:        PublisherNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Publisher, error) {
			return NewPublisher(), nil
		},
	})
}
