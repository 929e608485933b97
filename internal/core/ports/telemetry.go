package ports

import (
	"context"
	"io"
	"time"
)

//go:generate go run go.uber.org/mock/mockgen -source=telemetry.go -destination=mocks/mock_telemetry.go -package=mocks

// Telemetry records the phases of a build.
type Telemetry interface {
	// Record starts a vertex named name and returns a context carrying it.
	Record(ctx context.Context, name string) (context.Context, Vertex)
	// Journal additionally writes every update recorded from now on to path.
	Journal(path string) error
	// Summary reports what has been recorded so far.
	Summary() Summary
	// Close flushes the recording.
	Close() error
}

// Summary counts recorded vertices.
type Summary struct {
	Total    int
	Cached   int
	Errored  int
	Duration time.Duration
}

// Vertex is a unit of recorded work.
type Vertex interface {
	Stdout() io.Writer
	Stderr() io.Writer
	// Complete marks the vertex as finished, failed when err is non-nil.
	Complete(err error)
	// Cached marks the vertex as satisfied from a cache.
	Cached()
}

type vertexKey struct{}

// ContextWithVertex returns a copy of ctx carrying v.
func ContextWithVertex(ctx context.Context, v Vertex) context.Context {
	return context.WithValue(ctx, vertexKey{}, v)
}

// VertexFromContext returns the vertex carried by ctx, if any.
func VertexFromContext(ctx context.Context) (Vertex, bool) {
	v, ok := ctx.Value(vertexKey{}).(Vertex)
	return v, ok
}
