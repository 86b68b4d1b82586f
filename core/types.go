// File: types.go
// Role: the central Graph, Neighbor, and Edge types.
//
// All core APIs share one sync.RWMutex, so any number of readers (traversals,
// analyzers, shortest-path runs) may inspect a graph at once while writers
// (AddVertex, AddEdge) get exclusive access.
//
// This file declares Neighbor, Edge, Graph, GraphOption, EdgeOption,
// and the NewGraph / FromEdges constructors.

package core

import "sync"

// DefaultWeight is the weight given to an edge added without WithWeight.
const DefaultWeight int64 = 1

// Neighbor is a single entry of an adjacency list: the vertex reached and
// the weight of the edge that reaches it.
type Neighbor[K comparable] struct {
	// To is the neighboring vertex.
	To K

	// Weight is the cost of moving to To.
	Weight int64
}

// Edge is one AddEdge call as recorded by the Graph.
//
// Undirected edges are stored once here and twice in the adjacency lists
// (once per endpoint); directed edges appear once in both places.
type Edge[K comparable] struct {
	// From is the source vertex.
	From K

	// To is the destination vertex.
	To K

	// Weight is the cost of the edge (DefaultWeight unless overridden).
	Weight int64

	// Directed marks a one-way edge.
	Directed bool
}

// graphConfig collects GraphOption values before the Graph is allocated.
type graphConfig struct {
	directed bool
}

// GraphOption configures a Graph at construction time.
type GraphOption func(*graphConfig)

// WithDirected sets the default directedness for all new edges
// (true = directed, false = undirected).
func WithDirected(defaultDirected bool) GraphOption {
	return func(c *graphConfig) { c.directed = defaultDirected }
}

// edgeConfig collects EdgeOption values for a single AddEdge call.
type edgeConfig struct {
	weight      int64
	directed    bool
	hasDirected bool
}

// EdgeOption configures properties of individual edges when added.
type EdgeOption func(*edgeConfig)

// WithWeight sets the weight of the edge. Negative weights are legal.
func WithWeight(w int64) EdgeOption {
	return func(c *edgeConfig) { c.weight = w }
}

// WithEdgeDirected overrides the Graph's default directedness for this edge.
func WithEdgeDirected(directed bool) EdgeOption {
	return func(c *edgeConfig) {
		c.directed = directed
		c.hasDirected = true
	}
}

// Graph is an in-memory adjacency-list graph keyed by K.
//
// Adjacency lists keep insertion order and may contain the same neighbor
// several times (parallel edges are never merged). The vertex catalog keeps
// first-seen order and includes ids that only ever appeared as the target of
// an edge.
//
// mu guards every field below it.
type Graph[K comparable] struct {
	mu sync.RWMutex

	directed bool // default directedness of new edges

	order []K                 // vertex ids in first-seen order
	index map[K]int           // vertex id → position in order
	adj   map[K][]Neighbor[K] // vertex id → outgoing entries, insertion order
	edges []Edge[K]           // one entry per AddEdge call
}

// NewGraph creates an empty Graph. By default, new edges are undirected.
// Complexity: O(1).
func NewGraph[K comparable](opts ...GraphOption) *Graph[K] {
	var cfg graphConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Graph[K]{
		directed: cfg.directed,
		index:    make(map[K]int),
		adj:      make(map[K][]Neighbor[K]),
	}
}

// FromEdges builds a Graph from an edge list. Each Edge keeps its own
// Directed flag; opts only set the default reported by Directed().
// Complexity: O(E).
func FromEdges[K comparable](edges []Edge[K], opts ...GraphOption) *Graph[K] {
	g := NewGraph[K](opts...)
	for _, e := range edges {
		g.AddEdge(e.From, e.To, WithWeight(e.Weight), WithEdgeDirected(e.Directed))
	}

	return g
}
