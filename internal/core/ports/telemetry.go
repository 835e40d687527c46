package ports

import (
	"context"
	"io"

	"go.trai.ch/lockcheck/internal/core/domain"
)

//go:generate mockgen -source=telemetry.go -destination=mocks/mock_telemetry.go -package=mocks

// Telemetry records pipeline stages.
type Telemetry interface {
	// Record starts a new stage vertex.
	Record(ctx context.Context, name string) (context.Context, Vertex)
	// Close flushes and closes the recording session.
	Close() error
}

// Vertex is a single recorded stage.
type Vertex interface {
	Stdout() io.Writer
	Stderr() io.Writer
	// Log records a structured log line on the vertex.
	Log(level domain.LogLevel, msg string)
	// Complete marks the vertex finished, failed if err is not nil.
	Complete(err error)
	// Cached marks the vertex as skipped because its result was already known.
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
