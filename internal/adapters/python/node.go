package python

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/pexwrap/internal/core/ports"
)

// NodeID is the unique identifier for the interpreter prober Graft node.
const NodeID graft.ID = "adapter.python_prober"

func init() {
	graft.Register(graft.Node[ports.InterpreterProber]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.InterpreterProber, error) {
			return NewProber(), nil
		},
	})
}
