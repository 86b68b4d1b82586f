// Package dfs implements depth-first search on core.Graph together with the
// algorithms built on it: cycle detection and topological sort.
//
// Key features:
//   - DFS(g, start, opts...): recursive traversal from a root; a vertex is
//     marked visited on recursive entry. Result.Order is the pre-order
//     (visitation) sequence, Result.PostOrder the finish sequence.
//   - Walk(g, start, visited, opts...): the same with a caller-owned visited
//     set, for sweeping a graph component by component.
//   - DetectCycle(g, directed): first cycle found under the directed
//     (three-colour) or undirected (parent-per-frame) reading.
//   - TopologicalSort(g): reverse post-order over an all-directed graph.
//
// Neighbors are followed in insertion order, so every result is reproducible.
// An unknown start vertex is isolated: DFS returns Order == [start].
//
// Complexity:
//
//   - Time:   O(V + E)
//   - Memory: O(V) for recursion stack and metadata maps.
//
// Options:
//
//   - WithContext(ctx)     allows cancellation via context.Context.
//   - WithMaxDepth(limit)  stops recursion beyond given depth (>=0).
//
// Errors:
//
//   - ErrGraphNil       if g is nil.
//   - ErrCycleDetected  from TopologicalSort on a cyclic graph.
//   - ErrNotDirected    from TopologicalSort when an undirected edge exists.
//   - context.Canceled  if ctx is done.
package dfs
