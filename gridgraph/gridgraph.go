package gridgraph

import (
	"github.com/katalvlaran/graphlab/core"
)

// NewGridGraph constructs a GridGraph from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if grid has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Algorithmic complexity: O(W×H) time and memory.
func NewGridGraph(values [][]int, opts GridOptions) (*GridGraph, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	// Deep copy to prevent external mutation
	cells := make([][]int, h)
	for y := 0; y < h; y++ {
		cells[y] = make([]int, w)
		copy(cells[y], values[y])
	}

	return &GridGraph{
		Width:           w,
		Height:          h,
		CellValues:      cells,
		Conn:            opts.Conn,
		LandThreshold:   opts.LandThreshold,
		neighborOffsets: opts.Conn.offsets(),
	}, nil
}

// From2D is NewGridGraph with the default land threshold and the given connectivity.
func From2D(values [][]int, conn Connectivity) (*GridGraph, error) {
	opts := DefaultGridOptions()
	opts.Conn = conn

	return NewGridGraph(values, opts)
}

// InBounds reports whether (x,y) lies within the grid boundaries.
func (gg *GridGraph) InBounds(x, y int) bool {
	return x >= 0 && x < gg.Width && y >= 0 && y < gg.Height
}

// NeighborOffsets returns the precomputed (dx, dy) neighbor offsets.
func (gg *GridGraph) NeighborOffsets() [][2]int {
	return gg.neighborOffsets
}

// IsLand reports whether the cell at (x,y) reaches LandThreshold.
func (gg *GridGraph) IsLand(x, y int) bool {
	return gg.CellValues[y][x] >= gg.LandThreshold
}

// ToCoreGraph converts the GridGraph into an undirected *core.Graph keyed by
// Point. Every cell becomes a vertex (row-major order) and each adjacent pair
// under gg.Conn is joined once by a unit-weight edge.
// Complexity: O(W×H×d) time and memory.
func (gg *GridGraph) ToCoreGraph() *core.Graph[Point] {
	g := core.NewGraph[Point]()
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			g.AddVertex(Point{X: x, Y: y})
		}
	}
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			for _, d := range gg.neighborOffsets {
				nx, ny := x+d[0], y+d[1]
				// each pair once: only towards the later row-major cell
				if !gg.InBounds(nx, ny) || gg.index(nx, ny) < gg.index(x, y) {
					continue
				}
				g.AddEdge(Point{X: x, Y: y}, Point{X: nx, Y: ny})
			}
		}
	}

	return g
}

// index maps (x,y) to a row-major index: y*Width + x.
func (gg *GridGraph) index(x, y int) int {
	return y*gg.Width + x
}

// Coordinate converts a row-major index back to (x,y).
func (gg *GridGraph) Coordinate(idx int) (x, y int) {
	return idx % gg.Width, idx / gg.Width
}

// point converts a row-major index to a Point.
func (gg *GridGraph) point(idx int) Point {
	x, y := gg.Coordinate(idx)

	return Point{X: x, Y: y}
}
