// File: types.go
// Role: types and options for depth-first search traversal,
// including cancellation, depth limiting, and the three-colour vertex states
// shared by cycle detection and topological sort.

package dfs

import (
	"context"
	"errors"
)

// VertexState represents the DFS visitation state of a vertex.
type VertexState uint8

const (
	White VertexState = iota // White: the vertex has not been visited yet.
	Gray                     // Gray: the vertex is in the recursion stack (visiting).
	Black                    // Black: the vertex and all its descendants have been fully explored.
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to DFS,
	// Walk, or TopologicalSort.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrCycleDetected indicates that a cycle was encountered during
	// TopologicalSort.
	ErrCycleDetected = errors.New("dfs: cycle detected")

	// ErrNotDirected is returned by TopologicalSort when the graph holds an
	// undirected edge.
	ErrNotDirected = errors.New("dfs: topological sort requires directed edges")
)

// Option configures optional behavior of DFS traversal.
// Use with DFS(g, start, opts...).
type Option func(*Options)

// Options holds configurable parameters for DFS traversal.
type Options struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	// Cancelling the context will abort DFS early.
	Ctx context.Context

	// MaxDepth, if non-negative, limits recursion to the given depth.
	// A depth of 0 visits only the start vertex. Default is -1 (no limit).
	MaxDepth int
}

// DefaultOptions returns an Options struct with:
//   - Background context
//   - No depth limit (MaxDepth = -1)
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		MaxDepth: -1,
	}
}

// WithContext returns an Option that sets the Context for DFS traversal.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxDepth returns an Option that limits traversal depth to limit.
// A limit of 0 means only the start vertex is visited; negative means no limit.
func WithMaxDepth(limit int) Option {
	return func(o *Options) {
		o.MaxDepth = limit
	}
}

// Result captures the outcome of a depth-first traversal.
type Result[K comparable] struct {
	// Order records vertices in the sequence they were first entered (pre-order).
	Order []K

	// PostOrder records vertices in the sequence they finished.
	PostOrder []K

	// Depth maps each vertex to its tree depth (#edges) from the start.
	Depth map[K]int

	// Parent maps each vertex to the vertex from which it was first discovered.
	// The start vertex does not appear in this map.
	Parent map[K]K
}
