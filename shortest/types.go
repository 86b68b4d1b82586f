package shortest

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"

	"github.com/katalvlaran/graphlab/core"
)

// Distance sentinels. Neither value is ever used as an addend.
const (
	// Inf marks a vertex that cannot be reached.
	Inf int64 = math.MaxInt64

	// NegInf marks a vertex whose distance is unbounded below because a
	// negative cycle lies on some route to it.
	NegInf int64 = math.MinInt64
)

// Sentinel errors for shortest-path execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("shortest: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("shortest: invalid option supplied")

	// ErrBudgetExceeded is returned when a run needs more relaxation
	// attempts than WithStepBudget allows.
	ErrBudgetExceeded = errors.New("shortest: step budget exceeded")

	// ErrNegativeWeight is returned by Dijkstra when any edge weight is negative.
	ErrNegativeWeight = errors.New("shortest: negative edge weight")

	// ErrNoPath is returned by path reconstruction for an unreachable or unknown vertex.
	ErrNoPath = errors.New("shortest: no path")

	// ErrNegativeCycle is returned by path reconstruction when the route is
	// affected by a negative cycle and has no finite shortest form.
	ErrNegativeCycle = errors.New("shortest: path crosses a negative cycle")
)

// Option configures a shortest-path run via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation.
type Option func(*Options)

// Options holds parameters shared by BellmanFord, FloydWarshall and Dijkstra.
type Options struct {
	// Ctx allows cancellation and deadlines. Checked once per Bellman-Ford
	// pass, once per Floyd-Warshall intermediate vertex, and once per
	// Dijkstra heap pop.
	Ctx context.Context

	// StepBudget caps the number of relaxation attempts; 0 means unlimited.
	StepBudget int64

	// Logger receives one debug record per run.
	Logger *slog.Logger

	err error
}

// DefaultOptions returns Background context, no budget, and a discarding logger.
func DefaultOptions() Options {
	return Options{
		Ctx:    context.Background(),
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithContext sets a custom context for cancellation. nil is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithStepBudget limits the number of relaxation attempts.
//
//	n > 0: at most n attempts, then ErrBudgetExceeded
//	n == 0: no limit
//	n < 0: invalid option → ErrOptionViolation
func WithStepBudget(n int64) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: StepBudget cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.StepBudget = n
	}
}

// WithLogger routes debug records to l. nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}

// budget counts relaxation attempts against Options.StepBudget.
type budget struct {
	limit int64
	used  int64
}

// spend charges n attempts and fails once the limit is passed.
func (b *budget) spend(n int64) error {
	b.used += n
	if b.limit > 0 && b.used > b.limit {
		return fmt.Errorf("%w: %d > %d", ErrBudgetExceeded, b.used, b.limit)
	}

	return nil
}

// addSat returns a+b clamped to the open range (NegInf, Inf]. Callers never
// pass a sentinel as a; overflow upward saturates to Inf (no improvement),
// downward to NegInf+1 so it is never mistaken for the negative-cycle mark.
func addSat(a, b int64) int64 {
	s := a + b
	switch {
	case b > 0 && s < a:
		return Inf
	case b < 0 && s > a:
		return NegInf + 1
	case s == NegInf:
		return NegInf + 1
	}

	return s
}

// Result is the outcome of a single-source run.
type Result[K comparable] struct {
	// Source is the vertex distances are measured from.
	Source K

	// Dist maps every known vertex to its distance: a finite value, Inf when
	// unreachable, or NegInf when a negative cycle makes it unbounded.
	Dist map[K]int64

	// Prev maps each vertex with a finite distance (other than Source) to
	// its predecessor on a shortest path.
	Prev map[K]K

	// NegativeCycle reports that a negative cycle is reachable from Source.
	NegativeCycle bool

	// Unreliable flags the vertices whose distance is NegInf.
	Unreliable map[K]bool

	// Passes is the number of full relaxation passes Bellman-Ford made
	// before converging (0 for Dijkstra).
	Passes int
}

// Distance returns the finite shortest distance to v and true, or
// (Inf, false) when v is unreachable or unknown, or (NegInf, false) when v
// is affected by a negative cycle.
func (r *Result[K]) Distance(v K) (int64, bool) {
	d, ok := r.Dist[v]
	if !ok {
		return Inf, false
	}
	if d == Inf || d == NegInf {
		return d, false
	}

	return d, true
}

// PathTo reconstructs a shortest path from Source to v.
// Returns ErrNoPath for unreachable or unknown v and ErrNegativeCycle for
// vertices marked Unreliable.
func (r *Result[K]) PathTo(v K) ([]K, error) {
	d, ok := r.Dist[v]
	if !ok || d == Inf {
		return nil, fmt.Errorf("%w to %v", ErrNoPath, v)
	}
	if d == NegInf {
		return nil, fmt.Errorf("%w: %v", ErrNegativeCycle, v)
	}

	path := []K{v}
	for cur := v; cur != r.Source; {
		p, ok := r.Prev[cur]
		if !ok || len(path) > len(r.Dist) {
			return nil, fmt.Errorf("%w to %v", ErrNoPath, v)
		}
		path = append(path, p)
		cur = p
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

// arc is one traversable direction of a stored edge.
type arc[K comparable] struct {
	from, to K
	w        int64
}

// arcsOf expands edges into arcs in insertion order; an undirected edge
// yields both directions except for a self-loop.
func arcsOf[K comparable](edges []core.Edge[K]) []arc[K] {
	out := make([]arc[K], 0, 2*len(edges))
	for _, e := range edges {
		out = append(out, arc[K]{from: e.From, to: e.To, w: e.Weight})
		if !e.Directed && e.From != e.To {
			out = append(out, arc[K]{from: e.To, to: e.From, w: e.Weight})
		}
	}

	return out
}
