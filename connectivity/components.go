package connectivity

import (
	"github.com/katalvlaran/graphlab/bfs"
	"github.com/katalvlaran/graphlab/core"
)

// CountComponents returns the number of connected components of g.
// Isolated vertices (including ids that only ever appeared as AddVertex
// arguments) count as one component each.
func CountComponents[K comparable](g *core.Graph[K]) int {
	return len(Components(g))
}

// Components returns the members of each connected component. Components
// appear in the first-seen order of their earliest vertex, and members in
// BFS order from that vertex.
func Components[K comparable](g *core.Graph[K]) [][]K {
	if g == nil {
		return nil
	}
	u := undirectedView(g)

	verts := u.Vertices()
	visited := make(map[K]bool, len(verts))
	var comps [][]K
	for _, v := range verts {
		if visited[v] {
			continue
		}
		// No options and a non-nil graph: Walk cannot fail here.
		res, _ := bfs.Walk(u, v, visited)
		comps = append(comps, res.Order)
	}

	return comps
}

// undirectedView returns g itself when every edge is undirected, otherwise
// its underlying undirected copy.
func undirectedView[K comparable](g *core.Graph[K]) *core.Graph[K] {
	if g.HasDirectedEdges() {
		return g.Undirected()
	}

	return g
}
