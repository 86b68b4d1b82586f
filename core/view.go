// File: view.go
// Role: derived copies of a Graph (deep clone, underlying undirected graph).
// Determinism:
//   - Both copies replay Edges() in insertion order, so vertex order and
//     adjacency order match the source graph.

package core

// Clone returns a deep copy of the Graph: default directedness, vertices
// (including isolated ones) and edges.
// Complexity: O(V + E).
func (g *Graph[K]) Clone() *Graph[K] {
	return g.replay(false)
}

// Undirected returns a copy of the Graph in which every edge is undirected.
// Directed edges u→v gain their reverse entry v→u. Vertex order is kept.
//
// Connectivity questions (components, two-colouring) are asked of this view
// when the source graph holds directed edges.
// Complexity: O(V + E).
func (g *Graph[K]) Undirected() *Graph[K] {
	return g.replay(true)
}

// replay rebuilds the graph from its catalogs, optionally dropping
// directedness from every edge.
func (g *Graph[K]) replay(forceUndirected bool) *Graph[K] {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := NewGraph[K](WithDirected(g.directed && !forceUndirected))
	for _, id := range g.order {
		out.ensureVertex(id)
	}
	for _, e := range g.edges {
		directed := e.Directed && !forceUndirected
		out.edges = append(out.edges, Edge[K]{From: e.From, To: e.To, Weight: e.Weight, Directed: directed})
		out.adj[e.From] = append(out.adj[e.From], Neighbor[K]{To: e.To, Weight: e.Weight})
		if !directed && e.From != e.To {
			out.adj[e.To] = append(out.adj[e.To], Neighbor[K]{To: e.From, Weight: e.Weight})
		}
	}

	return out
}
