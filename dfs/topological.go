// TopologicalSort computes a linear ordering of vertices such that for
// every directed edge u→v, u appears before v in the ordering.
//
// Complexity:
//
//   - Time:   O(V + E) (each vertex and edge visited once)
//   - Memory: O(V)     (recursion stack and state map)

package dfs

import (
	"fmt"

	"github.com/katalvlaran/graphlab/core"
)

// topoSorter encapsulates state for a topological sort traversal.
type topoSorter[K comparable] struct {
	graph *core.Graph[K]    // the graph being sorted
	opts  Options           // traversal options (cancellation)
	state map[K]VertexState // visitation state per vertex
	order []K               // recorded post-order sequence
}

// TopologicalSort computes a topological ordering of all vertices in g.
// Roots are tried in first-seen order, so the result is deterministic.
// If g is nil, returns ErrGraphNil.
// If any edge is undirected, returns ErrNotDirected.
// If a cycle is detected, returns ErrCycleDetected naming the vertex that closed it.
// Only WithContext is honoured among the options.
func TopologicalSort[K comparable](g *core.Graph[K], options ...Option) ([]K, error) {
	// 1. Validate graph pointer
	if g == nil {
		return nil, ErrGraphNil
	}
	// 2. Only directed edges are supported
	for _, e := range g.Edges() {
		if !e.Directed {
			return nil, fmt.Errorf("%w: %v-%v", ErrNotDirected, e.From, e.To)
		}
	}
	// 3. Apply optional settings
	opts := DefaultOptions()
	for _, opt := range options {
		opt(&opts)
	}
	// 4. Initialize sorter state
	verts := g.Vertices()
	sorter := &topoSorter[K]{
		graph: g,
		opts:  opts,
		state: make(map[K]VertexState, len(verts)),
		order: make([]K, 0, len(verts)),
	}
	// 5. Drive DFS from every unvisited vertex
	for _, v := range verts {
		if sorter.state[v] == White {
			if err := sorter.visit(v); err != nil {
				return nil, err
			}
		}
	}
	// 6. Reverse post-order to produce topological order
	for i, j := 0, len(sorter.order)-1; i < j; i, j = i+1, j-1 {
		sorter.order[i], sorter.order[j] = sorter.order[j], sorter.order[i]
	}

	return sorter.order, nil
}

// visit performs a DFS from id, marking states and detecting back edges.
func (t *topoSorter[K]) visit(id K) error {
	select {
	case <-t.opts.Ctx.Done():
		return t.opts.Ctx.Err()
	default:
	}
	// Gray means id is on the current stack: a back edge closed a cycle.
	if t.state[id] == Gray {
		return fmt.Errorf("%w at %v", ErrCycleDetected, id)
	}
	if t.state[id] == Black {
		return nil
	}
	t.state[id] = Gray

	for _, nb := range t.graph.Neighbors(id) {
		if err := t.visit(nb.To); err != nil {
			return err
		}
	}

	t.state[id] = Black
	t.order = append(t.order, id)

	return nil
}
