// Package builder generates deterministic graph fixtures: paths, cycles,
// stars, wheels, complete and complete-bipartite graphs, grids and sparse
// random graphs.
//
// One orchestrator, BuildGraph, creates the graph, resolves the builder
// options and applies each Constructor in order:
//
//	g, err := builder.BuildGraph(
//		[]core.GraphOption{core.WithDirected(true)},
//		[]builder.BuilderOption{builder.WithSeed(7), builder.WithWeightFn(builder.UniformWeightFn(-2, 9))},
//		builder.RandomSparse(50, 0.1),
//	)
//
// Equal inputs, options, seed and constructor order always yield an
// identical graph, so fixtures can back golden tests and benchmarks.
// Constructors never panic; option constructors panic on meaningless input.
package builder
