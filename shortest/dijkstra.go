package shortest

import (
	"container/heap"
	"fmt"
	"time"

	"github.com/katalvlaran/graphlab/core"
)

// Dijkstra computes single-source shortest distances on a graph whose edge
// weights are all non-negative, processing vertices in order of increasing
// distance with a min-heap.
//
// Notes on implementation choices:
//
//   - An upfront scan of all edges (O(E)) detects negative weights and fails fast.
//   - A "lazy" decrease-key strategy pushes duplicates into the heap and
//     ignores stale entries when popped.
//
// The Result shape matches BellmanFord (Passes stays 0, NegativeCycle false).
// A source unknown to g is an isolated vertex.
//
// Errors: ErrGraphNil, ErrOptionViolation, ErrNegativeWeight,
// ErrBudgetExceeded, or the context error.
//
// Complexity: Time O((V + E) log V), Memory O(V + E).
func Dijkstra[K comparable](g *core.Graph[K], source K, opts ...Option) (*Result[K], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	// Pre-scan all edges to detect negative weights.
	for _, e := range g.Edges() {
		if e.Weight < 0 {
			return nil, fmt.Errorf("%w: edge %v→%v weight=%d", ErrNegativeWeight, e.From, e.To, e.Weight)
		}
	}
	started := time.Now()

	r := newRunner(g, source, o)
	visited := make(map[K]bool, len(r.res.Dist))
	pq := make(nodePQ[K], 0, len(r.res.Dist))
	heap.Init(&pq)
	heap.Push(&pq, &nodeItem[K]{id: source, dist: 0})

	err = r.dijkstra(&pq, visited)

	o.Logger.Debug("dijkstra finished",
		"source", source,
		"vertices", len(r.res.Dist),
		"settled", len(visited),
		"steps", r.steps.used,
		"elapsed", time.Since(started),
		"err", err,
	)

	return r.res, err
}

// dijkstra repeatedly extracts the closest unsettled vertex and relaxes its out-arcs.
func (r *runner[K]) dijkstra(pq *nodePQ[K], visited map[K]bool) error {
	for pq.Len() > 0 {
		if err := r.opts.Ctx.Err(); err != nil {
			return err
		}
		item := heap.Pop(pq).(*nodeItem[K])
		u := item.id
		// Skip stale heap entry.
		if visited[u] {
			continue
		}
		visited[u] = true

		for _, nb := range r.g.Neighbors(u) {
			if err := r.steps.spend(1); err != nil {
				return err
			}
			// Strictly better only, to avoid pushing duplicates on ties.
			newDist := addSat(item.dist, nb.Weight)
			if newDist >= r.res.Dist[nb.To] {
				continue
			}
			r.res.Dist[nb.To] = newDist
			r.res.Prev[nb.To] = u
			heap.Push(pq, &nodeItem[K]{id: nb.To, dist: newDist})
		}
	}

	return nil
}

// nodeItem represents a vertex and its current distance from the source.
type nodeItem[K comparable] struct {
	id   K
	dist int64
}

// nodePQ is a min-heap of *nodeItem ordered by dist ascending.
type nodePQ[K comparable] []*nodeItem[K]

func (pq nodePQ[K]) Len() int           { return len(pq) }
func (pq nodePQ[K]) Less(i, j int) bool { return pq[i].dist < pq[j].dist }
func (pq nodePQ[K]) Swap(i, j int)      { pq[i], pq[j] = pq[j], pq[i] }

// Push is called by heap.Push; x must be a *nodeItem.
func (pq *nodePQ[K]) Push(x any) { *pq = append(*pq, x.(*nodeItem[K])) }

// Pop is called by heap.Pop and removes the last element.
func (pq *nodePQ[K]) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
