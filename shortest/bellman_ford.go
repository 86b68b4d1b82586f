package shortest

import (
	"math/big"
	"time"

	"github.com/katalvlaran/graphlab/core"
)

// BellmanFord computes single-source shortest distances on g, tolerating
// negative weights.
//
// Arcs are relaxed in g.Edges() insertion order (an undirected edge relaxes
// both ways) for at most |V|−1 passes; a pass that changes nothing ends the
// loop early and proves there is no negative cycle. Otherwise one more pass
// runs: every arc that still relaxes points into a vertex affected by a
// negative cycle, and every vertex reachable from such a vertex is set to
// NegInf and flagged in Result.Unreliable. A negative cycle is reported
// through Result.NegativeCycle, never as an error.
//
// Sums below the int64 range are clamped to NegInf+1. Once any distance
// lands on that floor, int64 arithmetic can no longer tell a very deep
// finite path from a negative cycle, so the run is repeated with unbounded
// integers; the exact distances are then clamped back into int64.
//
// A source unknown to g is an isolated vertex: it alone is at distance 0.
//
// Errors: ErrGraphNil, ErrOptionViolation, ErrBudgetExceeded, or the
// context error. On budget or context failure the partial Result is returned
// alongside the error.
//
// Complexity: Time O(V·E), Memory O(V + E).
func BellmanFord[K comparable](g *core.Graph[K], source K, opts ...Option) (*Result[K], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	started := time.Now()

	r := newRunner(g, source, o)
	err = r.bellmanFord()

	o.Logger.Debug("bellman-ford finished",
		"source", source,
		"vertices", len(r.res.Dist),
		"arcs", len(r.arcs),
		"passes", r.res.Passes,
		"negative_cycle", r.res.NegativeCycle,
		"steps", r.steps.used,
		"elapsed", time.Since(started),
		"err", err,
	)

	return r.res, err
}

// runner holds the mutable state for one single-source execution.
type runner[K comparable] struct {
	g     *core.Graph[K]
	opts  Options
	arcs  []arc[K]
	steps budget
	res   *Result[K]

	floored bool // some relaxation was clamped at NegInf+1
}

// newRunner sets dist[v] = Inf for every known vertex and dist[source] = 0.
func newRunner[K comparable](g *core.Graph[K], source K, o Options) *runner[K] {
	verts := g.Vertices()
	res := &Result[K]{
		Source:     source,
		Dist:       make(map[K]int64, len(verts)+1),
		Prev:       make(map[K]K, len(verts)),
		Unreliable: make(map[K]bool),
	}
	for _, v := range verts {
		res.Dist[v] = Inf
	}
	res.Dist[source] = 0

	return &runner[K]{
		g:     g,
		opts:  o,
		arcs:  arcsOf(g.Edges()),
		steps: budget{limit: o.StepBudget},
		res:   res,
	}
}

func (r *runner[K]) bellmanFord() error {
	passes := len(r.res.Dist) - 1
	converged := false
	for pass := 1; pass <= passes; pass++ {
		if err := r.opts.Ctx.Err(); err != nil {
			return err
		}
		changed, err := r.relaxAll()
		if err != nil {
			return err
		}
		r.res.Passes = pass
		if !changed {
			converged = true
			break
		}
	}
	if r.floored {
		return r.exact()
	}
	if converged {
		return nil
	}

	// Detection pass: anything that still relaxes is downstream of a negative cycle.
	var seeds []K
	for _, a := range r.arcs {
		if err := r.steps.spend(1); err != nil {
			return err
		}
		du := r.res.Dist[a.from]
		if du == Inf {
			continue
		}
		if addSat(du, a.w) < r.res.Dist[a.to] {
			seeds = append(seeds, a.to)
		}
	}
	if len(seeds) > 0 {
		r.res.NegativeCycle = true
		r.markUnreliable(seeds)
	}

	return nil
}

// exact repeats the run with big.Int distances, replaces Dist and Prev with
// the exact result clamped into (NegInf, Inf], and marks negative cycles.
func (r *runner[K]) exact() error {
	weights := make([]*big.Int, len(r.arcs))
	for i, a := range r.arcs {
		weights[i] = big.NewInt(a.w)
	}
	dist := map[K]*big.Int{r.res.Source: new(big.Int)}
	prev := make(map[K]K, len(r.res.Dist))
	cand := new(big.Int)

	// relax returns the heads of every arc that improves a distance and
	// applies the improvement when update is set.
	relax := func(update bool) ([]K, error) {
		var improved []K
		for i, a := range r.arcs {
			if err := r.steps.spend(1); err != nil {
				return nil, err
			}
			du, ok := dist[a.from]
			if !ok {
				continue
			}
			cand.Add(du, weights[i])
			if dv, ok := dist[a.to]; ok && cand.Cmp(dv) >= 0 {
				continue
			}
			improved = append(improved, a.to)
			if update {
				dist[a.to] = new(big.Int).Set(cand)
				prev[a.to] = a.from
			}
		}
		return improved, nil
	}

	converged := false
	for pass := 1; pass <= len(r.res.Dist)-1; pass++ {
		if err := r.opts.Ctx.Err(); err != nil {
			return err
		}
		improved, err := relax(true)
		if err != nil {
			return err
		}
		r.res.Passes = pass
		if len(improved) == 0 {
			converged = true
			break
		}
	}

	floor, ceil := big.NewInt(NegInf+1), big.NewInt(Inf-1)
	for v := range r.res.Dist {
		r.res.Dist[v] = Inf
	}
	r.res.Prev = prev
	for v, d := range dist {
		switch {
		case d.Cmp(floor) < 0:
			r.res.Dist[v] = NegInf + 1
		case d.Cmp(ceil) > 0:
			r.res.Dist[v] = Inf
			delete(prev, v)
		default:
			r.res.Dist[v] = d.Int64()
		}
	}
	if converged {
		return nil
	}

	seeds, err := relax(false)
	if err != nil {
		return err
	}
	if len(seeds) > 0 {
		r.res.NegativeCycle = true
		r.markUnreliable(seeds)
	}

	return nil
}

// relaxAll performs one pass over every arc and reports whether any distance improved.
func (r *runner[K]) relaxAll() (bool, error) {
	changed := false
	for _, a := range r.arcs {
		if err := r.steps.spend(1); err != nil {
			return changed, err
		}
		du := r.res.Dist[a.from]
		if du == Inf {
			continue
		}
		if cand := addSat(du, a.w); cand < r.res.Dist[a.to] {
			if cand == NegInf+1 {
				r.floored = true
			}
			r.res.Dist[a.to] = cand
			r.res.Prev[a.to] = a.from
			changed = true
		}
	}

	return changed, nil
}

// markUnreliable floods NegInf from seeds along arcs.
func (r *runner[K]) markUnreliable(seeds []K) {
	out := make(map[K][]K, len(r.res.Dist))
	for _, a := range r.arcs {
		out[a.from] = append(out[a.from], a.to)
	}

	queue := make([]K, 0, len(seeds))
	for _, s := range seeds {
		if !r.res.Unreliable[s] {
			r.res.Unreliable[s] = true
			queue = append(queue, s)
		}
	}
	for qi := 0; qi < len(queue); qi++ {
		for _, v := range out[queue[qi]] {
			if !r.res.Unreliable[v] {
				r.res.Unreliable[v] = true
				queue = append(queue, v)
			}
		}
	}
	for v := range r.res.Unreliable {
		r.res.Dist[v] = NegInf
		delete(r.res.Prev, v)
	}
}
