package dfs

import (
	"github.com/katalvlaran/graphlab/core"
)

// dfsWalker encapsulates state during DFS.
type dfsWalker[K comparable] struct {
	graph   *core.Graph[K] // underlying graph
	opts    Options        // traversal options
	visited map[K]bool     // shared or private visited set
	res     *Result[K]     // result collector
}

// DFS performs depth-first search on graph g starting from start.
// A start vertex unknown to g is an isolated vertex, so the result is [start].
// Returns the partial Result and the context error if cancelled.
func DFS[K comparable](g *core.Graph[K], start K, opts ...Option) (*Result[K], error) {
	return Walk(g, start, nil, opts...)
}

// Walk is DFS with a caller-owned visited set: already-marked vertices are
// never entered and every entered vertex is marked. A nil visited allocates a
// fresh set. If start is already marked the result is empty.
func Walk[K comparable](g *core.Graph[K], start K, visited map[K]bool, opts ...Option) (*Result[K], error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}

	n := g.VertexCount()
	if visited == nil {
		visited = make(map[K]bool, n)
	}
	res := &Result[K]{
		Order:     make([]K, 0, n),
		PostOrder: make([]K, 0, n),
		Depth:     make(map[K]int, n),
		Parent:    make(map[K]K, n),
	}
	if visited[start] {
		return res, nil
	}

	w := &dfsWalker[K]{graph: g, opts: dopts, visited: visited, res: res}
	if err := w.traverse(start, 0); err != nil {
		return res, err
	}

	return res, nil
}

// traverse enters vertex id at the given depth and recurses into unvisited
// neighbors in insertion order.
func (w *dfsWalker[K]) traverse(id K, depth int) error {
	// 1. Cancellation check
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	// 2. Mark visited on entry and record pre-order
	w.visited[id] = true
	w.res.Depth[id] = depth
	w.res.Order = append(w.res.Order, id)

	// 3. Explore neighbors unless the depth limit stops us here
	if w.opts.MaxDepth < 0 || depth < w.opts.MaxDepth {
		for _, nb := range w.graph.Neighbors(id) {
			if w.visited[nb.To] {
				continue
			}
			w.res.Parent[nb.To] = id
			if err := w.traverse(nb.To, depth+1); err != nil {
				return err
			}
		}
	}

	// 4. Record finish order
	w.res.PostOrder = append(w.res.PostOrder, id)

	return nil
}
