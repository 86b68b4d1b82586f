package shortest

import (
	"fmt"
	"time"

	"github.com/katalvlaran/graphlab/core"
)

// noHop marks an empty next-hop cell.
const noHop = -1

// Matrix holds all-pairs shortest distances indexed by vertex.
type Matrix[K comparable] struct {
	// Nodes lists the vertices in row/column order (g.Vertices() order).
	Nodes []K

	// NegativeCycle reports that some vertex lies on a negative cycle.
	NegativeCycle bool

	index map[K]int
	dist  [][]int64
	next  [][]int
}

// FloydWarshall computes all-pairs shortest distances on g.
//
// The matrix starts with 0 on the diagonal, the lightest direct edge for each
// ordered pair (an undirected edge fills both cells), and Inf elsewhere. The
// closure then runs with k outermost, then i, then j, skipping any candidate
// whose operand is Inf, so sentinels are never summed. Afterwards a negative
// diagonal sets NegativeCycle, and every pair (i, j) with a route through a
// vertex on a negative cycle is set to NegInf.
//
// Errors: ErrGraphNil, ErrOptionViolation, ErrBudgetExceeded, or the
// context error (checked once per k).
//
// Complexity: Time O(V³), Memory O(V²).
func FloydWarshall[K comparable](g *core.Graph[K], opts ...Option) (*Matrix[K], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	started := time.Now()

	m := newMatrix(g)
	steps := budget{limit: o.StepBudget}
	err = m.close(o, &steps)
	if err == nil {
		m.markNegativeCycles()
	}

	o.Logger.Debug("floyd-warshall finished",
		"vertices", len(m.Nodes),
		"negative_cycle", m.NegativeCycle,
		"steps", steps.used,
		"elapsed", time.Since(started),
		"err", err,
	)
	if err != nil {
		return nil, err
	}

	return m, nil
}

// newMatrix converts g's adjacency into the initial distance and next-hop tables.
func newMatrix[K comparable](g *core.Graph[K]) *Matrix[K] {
	nodes := g.Vertices()
	n := len(nodes)
	m := &Matrix[K]{
		Nodes: nodes,
		index: make(map[K]int, n),
		dist:  make([][]int64, n),
		next:  make([][]int, n),
	}
	for i, v := range nodes {
		m.index[v] = i
		m.dist[i] = make([]int64, n)
		m.next[i] = make([]int, n)
		for j := range m.dist[i] {
			m.dist[i][j] = Inf
			m.next[i][j] = noHop
		}
		m.dist[i][i] = 0
		m.next[i][i] = i
	}
	for _, a := range arcsOf(g.Edges()) {
		i, j := m.index[a.from], m.index[a.to]
		if a.w < m.dist[i][j] {
			m.dist[i][j] = a.w
			m.next[i][j] = j
		}
	}

	return m
}

// close runs the k → i → j closure in place.
func (m *Matrix[K]) close(o Options, steps *budget) error {
	n := len(m.Nodes)
	var (
		k, i, j    int
		ik, kj, ij int64
		cand       int64
	)
	for k = 0; k < n; k++ {
		if err := o.Ctx.Err(); err != nil {
			return err
		}
		rowK := m.dist[k]
		for i = 0; i < n; i++ {
			ik = m.dist[i][k]
			if ik == Inf {
				continue
			}
			// one charge per candidate row
			if err := steps.spend(int64(n)); err != nil {
				return err
			}
			rowI := m.dist[i]
			for j = 0; j < n; j++ {
				kj = rowK[j]
				if kj == Inf {
					continue
				}
				ij = rowI[j]
				cand = addSat(ik, kj)
				if cand < ij {
					rowI[j] = cand
					m.next[i][j] = m.next[i][k]
				}
			}
		}
	}

	return nil
}

// markNegativeCycles sets NegativeCycle and overwrites every pair routed
// through a negative-diagonal vertex with NegInf.
func (m *Matrix[K]) markNegativeCycles() {
	n := len(m.Nodes)
	var onCycle []int
	for k := 0; k < n; k++ {
		if m.dist[k][k] < 0 {
			onCycle = append(onCycle, k)
		}
	}
	if len(onCycle) == 0 {
		return
	}
	m.NegativeCycle = true
	for _, k := range onCycle {
		for i := 0; i < n; i++ {
			if m.dist[i][k] == Inf {
				continue
			}
			for j := 0; j < n; j++ {
				if m.dist[k][j] == Inf {
					continue
				}
				m.dist[i][j] = NegInf
				m.next[i][j] = noHop
			}
		}
	}
}

// Dist returns the distance from u to v (finite, Inf, or NegInf) and
// whether both vertices are known.
func (m *Matrix[K]) Dist(u, v K) (int64, bool) {
	i, ok := m.index[u]
	if !ok {
		return Inf, false
	}
	j, ok := m.index[v]
	if !ok {
		return Inf, false
	}

	return m.dist[i][j], true
}

// Row returns a fresh map of distances from u, or nil if u is unknown.
func (m *Matrix[K]) Row(u K) map[K]int64 {
	i, ok := m.index[u]
	if !ok {
		return nil
	}
	row := make(map[K]int64, len(m.Nodes))
	for j, v := range m.Nodes {
		row[v] = m.dist[i][j]
	}

	return row
}

// Path reconstructs a shortest path from u to v by following next hops.
// Returns ErrNoPath for unknown or unreachable pairs and ErrNegativeCycle
// for pairs marked NegInf.
func (m *Matrix[K]) Path(u, v K) ([]K, error) {
	d, ok := m.Dist(u, v)
	if !ok || d == Inf {
		return nil, fmt.Errorf("%w from %v to %v", ErrNoPath, u, v)
	}
	if d == NegInf {
		return nil, fmt.Errorf("%w: %v to %v", ErrNegativeCycle, u, v)
	}

	i, j := m.index[u], m.index[v]
	path := []K{u}
	for i != j {
		i = m.next[i][j]
		if i == noHop || len(path) > len(m.Nodes) {
			return nil, fmt.Errorf("%w from %v to %v", ErrNoPath, u, v)
		}
		path = append(path, m.Nodes[i])
	}

	return path, nil
}
