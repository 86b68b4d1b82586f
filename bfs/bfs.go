package bfs

import (
	"context"

	"github.com/katalvlaran/graphlab/core"
)

// queueItem pairs a vertex with its BFS depth.
type queueItem[K comparable] struct {
	id    K
	depth int
}

// walker encapsulates mutable BFS state.
type walker[K comparable] struct {
	graph   *core.Graph[K]
	opts    Options
	ctx     context.Context
	queue   []queueItem[K]
	visited map[K]bool
	res     *Result[K]
}

// BFS runs breadth-first search on g starting from start.
//
// A start vertex unknown to g is treated as an isolated vertex: the result
// is the single-element order [start]. Returns ErrGraphNil for a nil graph,
// ErrOptionViolation for bad options, or the context error on cancellation.
func BFS[K comparable](g *core.Graph[K], start K, opts ...Option) (*Result[K], error) {
	return Walk(g, start, nil, opts...)
}

// Walk is BFS with a caller-owned visited set. Vertices already marked in
// visited are never enqueued, and every vertex this walk reaches is marked
// in it, so successive calls over one set sweep a graph component by
// component. A nil visited allocates a fresh set. If start itself is already
// marked, the result is empty.
func Walk[K comparable](g *core.Graph[K], start K, visited map[K]bool, opts ...Option) (*Result[K], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	n := g.VertexCount()
	if visited == nil {
		visited = make(map[K]bool, n)
	}
	w := &walker[K]{
		graph:   g,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem[K], 0, n),
		visited: visited,
		res: &Result[K]{
			Order:  make([]K, 0, n),
			Depth:  make(map[K]int, n),
			Parent: make(map[K]K, n),
		},
	}
	if visited[start] {
		return w.res, nil
	}

	// Seed queue with start vertex (no parent)
	w.enqueue(start, 0)

	return w.res, w.loop()
}

// enqueue marks id visited at depth d and adds it to the queue.
// Marking on enqueue (not on dequeue) keeps a vertex from entering the
// queue twice when several edges lead to it.
func (w *walker[K]) enqueue(id K, d int) {
	w.visited[id] = true
	w.res.Depth[id] = d
	w.queue = append(w.queue, queueItem[K]{id: id, depth: d})
}

// loop processes the queue until empty or cancellation.
func (w *walker[K]) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per dequeue)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		w.res.Order = append(w.res.Order, item.id)
		w.enqueueNeighbors(item)
	}

	return nil
}

// enqueueNeighbors applies MaxDepth and enqueues each unseen neighbor in
// adjacency (insertion) order.
func (w *walker[K]) enqueueNeighbors(item queueItem[K]) {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return
	}
	for _, nb := range w.graph.Neighbors(item.id) {
		if w.visited[nb.To] {
			continue
		}
		w.res.Parent[nb.To] = item.id
		w.enqueue(nb.To, nextDepth)
	}
}
