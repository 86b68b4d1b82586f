// Cycle detection for both directed and undirected readings of a core.Graph.
// DetectCycle reports the first cycle found, as a closed vertex sequence
// [v0, v1, ..., v0], using three-colour marking for directed input and a
// parent-per-frame check for undirected input.
//
// Complexity:
//
//   - Time:   O(V + E)
//   - Memory: O(V)     (recursion stack + state map + path)

package dfs

import (
	"github.com/katalvlaran/graphlab/core"
)

// cycleFinder carries the shared state of one DetectCycle call.
type cycleFinder[K comparable] struct {
	graph *core.Graph[K]
	opts  Options
	state map[K]VertexState
	path  []K // current DFS path (stack) for cycle reconstruction
	cycle []K // first cycle found, closed
}

// DetectCycle inspects g for a cycle.
//
// directed == true reads adjacency lists exactly as stored: reaching a Gray
// vertex (one still on the recursion stack) is a cycle, which includes a
// directed self-loop. An undirected edge stored in both directions therefore
// forms a 2-cycle in this reading.
//
// directed == false reads g as undirected (directed edges are mirrored first):
// reaching a vertex still on the stack, other than the current frame's parent,
// is a cycle. Every edge back to the parent is skipped, so parallel edges
// between two vertices are not a cycle, while a self-loop is.
//
// Returns (true, cycle, nil) when a cycle exists, (false, nil, nil) when not,
// and the context error if cancelled. A nil graph is treated as cycle-free.
func DetectCycle[K comparable](g *core.Graph[K], directed bool, opts ...Option) (bool, []K, error) {
	// 1) Nil graph is treated as cycle-free
	if g == nil {
		return false, nil, nil
	}
	if !directed && g.HasDirectedEdges() {
		g = g.Undirected()
	}

	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	// 2) Prepare visitation state
	verts := g.Vertices()
	f := &cycleFinder[K]{
		graph: g,
		opts:  o,
		state: make(map[K]VertexState, len(verts)),
		path:  make([]K, 0, len(verts)),
	}

	// 3) Launch DFS from each unvisited vertex in first-seen order
	for _, v := range verts {
		if f.state[v] != White {
			continue
		}
		var (
			found bool
			err   error
		)
		if directed {
			found, err = f.visitDirected(v)
		} else {
			var zero K
			found, err = f.visitUndirected(v, zero, false)
		}
		if err != nil {
			return false, nil, err
		}
		if found {
			return true, f.cycle, nil
		}
	}

	return false, nil, nil
}

// visitDirected colours id Gray, explores its out-arcs, and stops at the
// first arc into a Gray vertex.
func (f *cycleFinder[K]) visitDirected(id K) (bool, error) {
	if err := f.checkCtx(); err != nil {
		return false, err
	}
	f.state[id] = Gray
	f.path = append(f.path, id)

	for _, nb := range f.graph.Neighbors(id) {
		switch f.state[nb.To] {
		case White:
			found, err := f.visitDirected(nb.To)
			if found || err != nil {
				return found, err
			}
		case Gray:
			f.record(nb.To)

			return true, nil
		}
	}

	// Backtrack: pop id and mark it Black (fully explored)
	f.path = f.path[:len(f.path)-1]
	f.state[id] = Black

	return false, nil
}

// visitUndirected explores id while remembering the vertex it was entered
// from. hasParent is false for a root, since the zero K may be a real vertex.
func (f *cycleFinder[K]) visitUndirected(id, parent K, hasParent bool) (bool, error) {
	if err := f.checkCtx(); err != nil {
		return false, err
	}
	f.state[id] = Gray
	f.path = append(f.path, id)

	for _, nb := range f.graph.Neighbors(id) {
		if hasParent && nb.To == parent {
			continue
		}
		switch f.state[nb.To] {
		case White:
			found, err := f.visitUndirected(nb.To, id, true)
			if found || err != nil {
				return found, err
			}
		case Gray:
			f.record(nb.To)

			return true, nil
		}
		// Black here is a finished child reached again over a parallel edge.
	}

	f.path = f.path[:len(f.path)-1]
	f.state[id] = Black

	return false, nil
}

// record extracts the cycle path[idx(start):] and closes it with start.
func (f *cycleFinder[K]) record(start K) {
	idx := indexOf(f.path, start)
	seq := append([]K(nil), f.path[idx:]...)
	f.cycle = append(seq, start)
}

func (f *cycleFinder[K]) checkCtx() error {
	select {
	case <-f.opts.Ctx.Done():
		return f.opts.Ctx.Err()
	default:
		return nil
	}
}

// indexOf returns the first index of val in s, or -1 if not found.
func indexOf[K comparable](s []K, val K) int {
	for i, x := range s {
		if x == val {
			return i
		}
	}

	return -1
}
