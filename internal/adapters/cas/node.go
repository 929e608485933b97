package cas

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/pexwrap/internal/core/ports"
)

// NodeID is the unique identifier for the interpreter cache Graft node.
const NodeID graft.ID = "adapter.interpreter_cache"

func init() {
	graft.Register(graft.Node[ports.InterpreterCache]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.InterpreterCache, error) {
			return NewStore(), nil
		},
	})
}
