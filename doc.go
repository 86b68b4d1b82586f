// Package graphlab is an in-memory graph engine: build a graph keyed by any
// comparable type, walk it, ask structural questions about it and compute
// shortest paths, including on graphs with negative weights.
//
// What is in the box:
//
//   - Core primitives: vertices and weighted edges, directed or not, parallel
//     edges and self-loops kept as given, safe for concurrent readers
//   - Traversals: BFS (order, depth, parent) and DFS (pre/post-order)
//   - Connectivity: components, bipartiteness, cycle detection
//   - Shortest paths: Bellman-Ford with negative-cycle marking,
//     Floyd-Warshall, Dijkstra
//   - Grids: flood fill, island labelling, cheapest bridge between islands
//
// Layout:
//
//	core/          Graph, Edge, Neighbor and their constructors
//	bfs/, dfs/     traversal engines, topological sort, cycle search
//	connectivity/  components, two-colouring, cycle queries
//	shortest/      Bellman-Ford, Floyd-Warshall, Dijkstra
//	gridgraph/     flood fill and 2D grid graphs
//	builder/       deterministic graph fixtures
//	cmd/graphlab/  command line front end over YAML graph documents
//
// Quick example:
//
//	edges 0→1 (1), 0→2 (4), 1→2 (-3), 2→3 (2), 3→1 (1)
//
//	Bellman-Ford from 0 gives [0 1 -2 0]. The cycle 1→2→3→1 weighs 0,
//	so no negative cycle is reported.
//
//	go get github.com/katalvlaran/graphlab
package graphlab
