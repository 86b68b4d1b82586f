// Package connectivity answers whole-graph structural questions about a
// core.Graph: how many connected components it has, whether it is
// bipartite, and whether it contains a cycle.
//
// What
//
//   - CountComponents / Components: sweep every known vertex in first-seen
//     order; each vertex not yet visited starts one bfs.Walk over a shared
//     visited set. The number of walks started is the component count.
//   - IsBipartite / TwoColoring: BFS two-colouring of every component.
//     A neighbour with the same colour as the current vertex ends the check
//     at once; a self-loop is therefore never bipartite.
//   - HasCycle: delegates to dfs.DetectCycle under the requested reading.
//
// Directed input
//
//	Components and bipartiteness are properties of the underlying
//	undirected graph. A graph holding any directed edge is analysed through
//	g.Undirected(), which makes the answers independent of the order in
//	which vertices and edges were inserted (weak components).
//
// Nil graphs
//
//	A nil graph is empty: zero components, bipartite, acyclic.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E) per call (plus O(V + E) for the undirected view).
//   - Memory: O(V)
package connectivity
