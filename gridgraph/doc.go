// Package gridgraph treats a 2D grid of cells as a graph, enabling
// flood fill, component analysis, and minimal-cost "island" expansions.
//
// What:
//
//   - FloodFill / FloodFillConn repaint a same-valued region in place,
//     walking the grid as an implicit graph (no adjacency is materialised).
//   - GridGraph wraps a rectangular [][]int grid with tunable LandThreshold.
//   - Identifies connected components ("islands") of cells with value ≥ LandThreshold.
//   - Computes minimal conversions (0-1 BFS) to connect two island sets.
//   - Converts to a *core.Graph[Point] for the generic graph algorithms.
//
// Complexity:
//
//   - FloodFill:             O(R), Memory: O(R)        (R = cells in the region).
//   - ConnectedComponents:   O(W×H×d), Memory: O(W×H)  (d = number of neighbors, 4 or 8).
//   - ExpandIsland:          O(W×H×d), Memory: O(W×H).
//   - ToCoreGraph:           O(W×H×d), Memory: O(W×H + E).
//
// Options:
//
//   - GridOptions.LandThreshold: minimum value considered "land".
//   - GridOptions.Conn: Conn4 (4-neighbors) or Conn8 (8-neighbors).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrComponentIndex: requested component index out of range.
//   - ErrNoPath: no conversion path exists between specified components.
package gridgraph
