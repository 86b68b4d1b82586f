// Package bfs provides breadth-first search over a core.Graph,
// returning unweighted hop distances, parent links, and visit order.
//
// What
//
//   - Explore vertices in non-decreasing hop distance from a start vertex.
//   - Returns a Result containing:
//   - Order: visit sequence
//   - Depth: map from vertex → distance (edges) from start
//   - Parent: map from vertex → its predecessor in the BFS tree
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//   - Follows adjacency lists as stored, so directed edges are followed
//     forward only and undirected edges both ways.
//   - Walk shares a visited set across calls for component-by-component sweeps.
//
// Marking order
//
//	A vertex is marked visited when it is enqueued, not when it is dequeued.
//	With parallel edges to one neighbor, the neighbor is therefore queued
//	once, and Parent records the first vertex that discovered it.
//
// Determinism
//
//	core.Graph returns neighbors in insertion order and BFS enqueues them in
//	that order, so the visit sequence is fully reproducible.
//
// Unknown start
//
//	A start vertex the graph has never seen is an isolated vertex: the
//	result is Order == [start] and no error.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.BFS(g, "start", bfs.WithMaxDepth(3))
//	if err != nil {
//	    // ErrGraphNil, ErrOptionViolation or a context error
//	}
//	path, _ := res.PathTo("goal")
//
// Errors
//
//   - ErrGraphNil         if the graph pointer is nil.
//   - ErrOptionViolation  if an Option is invalid (negative MaxDepth).
//   - ErrNoPath           from PathTo for an unreached vertex.
//   - ctx.Err()           when the context is cancelled mid-walk.
package bfs
