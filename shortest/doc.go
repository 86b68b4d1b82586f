// Package shortest computes weighted shortest paths on a core.Graph:
// single-source with negative weights (BellmanFord), single-source with
// non-negative weights (Dijkstra), and all pairs (FloydWarshall).
//
// Distances are int64. Two sentinels stand outside the finite range:
//
//   - Inf    (math.MaxInt64) – unreachable.
//   - NegInf (math.MinInt64) – unbounded below; a negative cycle lies on a
//     route to the vertex.
//
// Sentinels are never used as addends, and finite sums saturate instead of
// wrapping, so no input weight can overflow into a wrong distance.
//
// Negative cycles
//
//	BellmanFord and FloydWarshall report negative cycles through a boolean
//	(Result.NegativeCycle, Matrix.NegativeCycle) and mark every affected
//	distance NegInf. They are not errors: the distances of unaffected
//	vertices remain exact. Path reconstruction into an affected vertex
//	returns ErrNegativeCycle.
//
// Options (shared by all three algorithms)
//
//   - WithContext(ctx)    – cancellation/deadline, checked per pass, per
//     intermediate vertex, or per heap pop.
//   - WithStepBudget(n)   – cap on relaxation attempts; ErrBudgetExceeded.
//   - WithLogger(logger)  – one slog debug record per run (discarded by default).
//
// Errors:
//
//   - ErrGraphNil         – nil graph pointer.
//   - ErrOptionViolation  – negative step budget.
//   - ErrBudgetExceeded   – step budget exhausted.
//   - ErrNegativeWeight   – Dijkstra on a graph with a negative edge.
//   - ErrNoPath, ErrNegativeCycle – from PathTo / Path.
//
// Usage:
//
//	res, err := shortest.BellmanFord(g, "A", shortest.WithStepBudget(1_000_000))
//	if err != nil {
//	    return err
//	}
//	if res.NegativeCycle {
//	    // some distances are NegInf
//	}
//	d, ok := res.Distance("B")
package shortest
