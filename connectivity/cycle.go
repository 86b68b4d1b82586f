package connectivity

import (
	"github.com/katalvlaran/graphlab/core"
	"github.com/katalvlaran/graphlab/dfs"
)

// HasCycle reports whether g contains a cycle.
//
// With directed == true the stored adjacency is read as arcs and a cycle is
// a back edge to a vertex still on the DFS stack (tri-state marking). With
// directed == false the graph is read as undirected and a cycle is an edge to
// a visited vertex other than the DFS parent; a self-loop counts, a doubled
// edge does not.
func HasCycle[K comparable](g *core.Graph[K], directed bool) bool {
	// Without a context option DetectCycle cannot fail.
	found, _, _ := dfs.DetectCycle(g, directed)

	return found
}

// FindCycle is HasCycle that also returns the closed witness [v0 … v0].
func FindCycle[K comparable](g *core.Graph[K], directed bool) ([]K, bool) {
	found, cycle, _ := dfs.DetectCycle(g, directed)

	return cycle, found
}
