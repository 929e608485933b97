package interpreter

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/pexwrap/internal/adapters/cas"
	"go.trai.ch/pexwrap/internal/adapters/logger"
	"go.trai.ch/pexwrap/internal/core/ports"
)

// NodeID is the unique identifier for the interpreter resolver Graft node.
const NodeID graft.ID = "adapter.interpreter_resolver"

func init() {
	graft.Register(graft.Node[ports.InterpreterResolver]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{cas.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.InterpreterResolver, error) {
			cache, err := graft.Dep[ports.InterpreterCache](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewResolver(cache, log), nil
		},
	})
}
