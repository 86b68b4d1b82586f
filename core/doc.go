// Package core provides the graph store used by every algorithm package in
// graphlab: a thread-safe, generic, in-memory adjacency-list Graph.
//
// The Graph G = (V,E) supports:
//
//   - Any comparable vertex key K (ints, strings, small structs)
//   - Directed vs. undirected edges, as a graph default (WithDirected) and
//     per edge (WithEdgeDirected), so one graph may mix both
//   - Weighted edges (WithWeight); an edge added without a weight weighs 1
//   - Parallel edges and self-loops, stored as given, never merged
//   - Deterministic iteration: Vertices() in first-seen order, Neighbors()
//     and Edges() in insertion order
//
// Storage:
//
//	adj[u] = []Neighbor{{To: v, Weight: w}, ...}
//
// An undirected edge u–v appends v to adj[u] and u to adj[v]; a directed
// edge u→v appends only to adj[u]. Vertices that only appear as a target
// are still part of the vertex catalog.
//
// Core Methods:
//
//	// Construction
//	NewGraph[K](opts ...GraphOption) *Graph[K]          // O(1)
//	FromEdges[K](edges []Edge[K], opts ...GraphOption)  // O(E)
//	AddVertex(id K)                                     // O(1)
//	AddEdge(u, v K, opts ...EdgeOption)                 // O(1)
//
//	// Query
//	Neighbors(u K) []Neighbor[K]   // O(d), nil for unknown u
//	HasVertex(id K) bool           // O(1)
//	Vertices() []K                 // O(V)
//	Edges() []Edge[K]              // O(E)
//	VertexCount(), EdgeCount()     // O(1)
//	OutDegree(u K) int             // O(1)
//
//	// Copies
//	Clone() *Graph[K]              // O(V+E)
//	Undirected() *Graph[K]         // O(V+E), every edge mirrored
//
// There are no error conditions: the store is a pure data structure and an
// unknown vertex simply has no neighbors.
//
// Concurrency: a single sync.RWMutex guards the store. Traversals only read,
// so they may run in parallel; edges must not be added to a graph while a
// traversal over it is in flight if the traversal is expected to see a
// consistent snapshot.
package core
