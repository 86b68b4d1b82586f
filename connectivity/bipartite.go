package connectivity

import (
	"github.com/katalvlaran/graphlab/core"
)

// Colour labels used by TwoColoring. A vertex absent from the colouring map
// is uncoloured, so the zero side is never confused with "not yet seen".
const (
	ColorA = 0
	ColorB = 1
)

// IsBipartite reports whether g's vertices can be split into two sides with
// every edge crossing between them.
func IsBipartite[K comparable](g *core.Graph[K]) bool {
	_, ok := TwoColoring(g)

	return ok
}

// TwoColoring colours every component of g by BFS, alternating ColorA and
// ColorB by level. It returns (colouring, true) for a bipartite graph and
// (nil, false) as soon as an edge joins two vertices of the same colour.
func TwoColoring[K comparable](g *core.Graph[K]) (map[K]int, bool) {
	if g == nil {
		return map[K]int{}, true
	}
	u := undirectedView(g)

	verts := u.Vertices()
	color := make(map[K]int, len(verts))
	queue := make([]K, 0, len(verts))
	for _, root := range verts {
		if _, seen := color[root]; seen {
			continue
		}
		color[root] = ColorA
		queue = append(queue[:0], root)
		for qi := 0; qi < len(queue); qi++ {
			cur := queue[qi]
			for _, nb := range u.Neighbors(cur) {
				c, seen := color[nb.To]
				if !seen {
					color[nb.To] = 1 - color[cur]
					queue = append(queue, nb.To)
					continue
				}
				if c == color[cur] {
					return nil, false
				}
			}
		}
	}

	return color, true
}
