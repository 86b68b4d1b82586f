// File: methods.go
// Role: Graph method implementations.
//
// Writers (AddVertex, AddEdge) take the write lock; every query takes the
// read lock and returns copies, so results never alias the adjacency lists.

package core

// AddVertex registers id as a vertex. Adding an existing vertex is a no-op.
// Complexity: O(1) amortized.
func (g *Graph[K]) AddVertex(id K) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.ensureVertex(id)
}

// AddEdge inserts u→v, and v→u as well when the edge is undirected.
//
// The edge takes the Graph's default directedness unless WithEdgeDirected is
// given, and weight DefaultWeight unless WithWeight is given. Both endpoints
// are registered as vertices (u first). Duplicate edges are kept: a second
// AddEdge(u, v) appends a second entry to u's adjacency list.
// An undirected self-loop is stored once.
//
// Complexity: O(1) amortized.
func (g *Graph[K]) AddEdge(u, v K, opts ...EdgeOption) {
	cfg := edgeConfig{weight: DefaultWeight}
	for _, opt := range opts {
		opt(&cfg)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	directed := g.directed
	if cfg.hasDirected {
		directed = cfg.directed
	}

	g.ensureVertex(u)
	g.ensureVertex(v)

	g.edges = append(g.edges, Edge[K]{From: u, To: v, Weight: cfg.weight, Directed: directed})
	g.adj[u] = append(g.adj[u], Neighbor[K]{To: v, Weight: cfg.weight})
	if !directed && u != v {
		g.adj[v] = append(g.adj[v], Neighbor[K]{To: u, Weight: cfg.weight})
	}
}

// Neighbors returns the adjacency list of u in insertion order.
// An unknown vertex has no neighbors; the result is nil, not an error.
// Complexity: O(d), d = out-degree of u.
func (g *Graph[K]) Neighbors(u K) []Neighbor[K] {
	g.mu.RLock()
	defer g.mu.RUnlock()

	list := g.adj[u]
	if len(list) == 0 {
		return nil
	}
	out := make([]Neighbor[K], len(list))
	copy(out, list)

	return out
}

// HasVertex reports whether id was ever added, directly or as an edge endpoint.
// Complexity: O(1).
func (g *Graph[K]) HasVertex(id K) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.index[id]

	return ok
}

// Vertices returns every known vertex in first-seen order.
// Complexity: O(V).
func (g *Graph[K]) Vertices() []K {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]K, len(g.order))
	copy(out, g.order)

	return out
}

// Edges returns the recorded edges in insertion order.
// Complexity: O(E).
func (g *Graph[K]) Edges() []Edge[K] {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]Edge[K], len(g.edges))
	copy(out, g.edges)

	return out
}

// VertexCount returns the number of known vertices. O(1).
func (g *Graph[K]) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.order)
}

// EdgeCount returns the number of AddEdge calls recorded. O(1).
func (g *Graph[K]) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// OutDegree returns the length of u's adjacency list (0 for unknown u).
// Undirected edges count once at each endpoint; parallel edges count each time.
func (g *Graph[K]) OutDegree(u K) int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adj[u])
}

// Directed reports the default directedness applied to new edges.
// It says nothing about per-edge overrides; see HasDirectedEdges.
func (g *Graph[K]) Directed() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.directed
}

// HasDirectedEdges reports whether at least one stored edge is directed.
// Complexity: O(E).
func (g *Graph[K]) HasDirectedEdges() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	for i := range g.edges {
		if g.edges[i].Directed {
			return true
		}
	}

	return false
}

// HasNegativeWeight reports whether any stored edge has a negative weight.
// Complexity: O(E).
func (g *Graph[K]) HasNegativeWeight() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	for i := range g.edges {
		if g.edges[i].Weight < 0 {
			return true
		}
	}

	return false
}

// ensureVertex appends id to the vertex catalog on first sight.
// Caller must hold the write lock.
func (g *Graph[K]) ensureVertex(id K) {
	if _, ok := g.index[id]; ok {
		return
	}
	g.index[id] = len(g.order)
	g.order = append(g.order, id)
}
