package builder

import (
	"fmt"

	"github.com/katalvlaran/graphlab/core"
)

// Method tags and minima used in error context.
const (
	methodPath         = "Path"
	methodCycle        = "Cycle"
	methodStar         = "Star"
	methodWheel        = "Wheel"
	methodComplete     = "Complete"
	methodBipartite    = "CompleteBipartite"
	methodGrid         = "Grid"
	methodRandomSparse = "RandomSparse"

	minPathNodes     = 2
	minCycleNodes    = 3
	minStarNodes     = 2
	minWheelNodes    = 4
	minCompleteNodes = 1
	minPartSize      = 1
	minGridDim       = 1
	minSparseNodes   = 1

	// Center is the fixed hub ID used by Star and Wheel.
	Center = "Center"

	gridIDFmt = "%d,%d"
)

// addVertices inserts ids 0..n-1 produced by cfg.idFn and returns them.
func addVertices(g *core.Graph[string], cfg builderConfig, n int) []string {
	ids := make([]string, n)
	for i := range ids {
		ids[i] = cfg.idFn(i)
		g.AddVertex(ids[i])
	}

	return ids
}

func addEdge(g *core.Graph[string], cfg builderConfig, u, v string) {
	g.AddEdge(u, v, core.WithWeight(cfg.weightFn(cfg.rng)))
}

// Path builds the simple path P_n (n ≥ 2): 0-1-…-(n-1).
func Path(n int) Constructor {
	return func(g *core.Graph[string], cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		ids := addVertices(g, cfg, n)
		for i := 0; i+1 < n; i++ {
			addEdge(g, cfg, ids[i], ids[i+1])
		}
		return nil
	}
}

// Cycle builds the simple cycle C_n (n ≥ 3). Edges run in ascending index
// order and the last one closes the ring back to index 0.
func Cycle(n int) Constructor {
	return func(g *core.Graph[string], cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		ids := addVertices(g, cfg, n)
		for i := 0; i < n; i++ {
			addEdge(g, cfg, ids[i], ids[(i+1)%n])
		}
		return nil
	}
}

// Star builds a star with hub Center and n-1 leaves (n ≥ 2).
func Star(n int) Constructor {
	return func(g *core.Graph[string], cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		g.AddVertex(Center)
		for _, leaf := range addVertices(g, cfg, n-1) {
			addEdge(g, cfg, Center, leaf)
		}
		return nil
	}
}

// Wheel builds W_n: a rim cycle of n-1 vertices plus spokes from Center
// (n ≥ 4).
func Wheel(n int) Constructor {
	return func(g *core.Graph[string], cfg builderConfig) error {
		if n < minWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, minWheelNodes, ErrTooFewVertices)
		}
		if err := Cycle(n-1)(g, cfg); err != nil {
			return fmt.Errorf("%s: %w", methodWheel, err)
		}
		g.AddVertex(Center)
		for i := 0; i < n-1; i++ {
			addEdge(g, cfg, Center, cfg.idFn(i))
		}
		return nil
	}
}

// Complete builds K_n (n ≥ 1). On a directed graph every ordered pair gets
// its own arc.
func Complete(n int) Constructor {
	return func(g *core.Graph[string], cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		ids := addVertices(g, cfg, n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				addEdge(g, cfg, ids[i], ids[j])
				if g.Directed() {
					addEdge(g, cfg, ids[j], ids[i])
				}
			}
		}
		return nil
	}
}

// CompleteBipartite builds K_{n1,n2} with sides labelled by the partition
// prefixes ("L0".."L{n1-1}", "R0".."R{n2-1}" by default). Edges run from
// the left side to the right.
func CompleteBipartite(n1, n2 int) Constructor {
	return func(g *core.Graph[string], cfg builderConfig) error {
		if n1 < minPartSize || n2 < minPartSize {
			return fmt.Errorf("%s: n1=%d, n2=%d (each must be ≥ %d): %w",
				methodBipartite, n1, n2, minPartSize, ErrTooFewVertices)
		}
		left := make([]string, n1)
		for i := range left {
			left[i] = fmt.Sprintf("%s%d", cfg.leftPrefix, i)
			g.AddVertex(left[i])
		}
		right := make([]string, n2)
		for j := range right {
			right[j] = fmt.Sprintf("%s%d", cfg.rightPrefix, j)
			g.AddVertex(right[j])
		}
		for _, u := range left {
			for _, v := range right {
				addEdge(g, cfg, u, v)
			}
		}
		return nil
	}
}

// GridID returns the vertex ID Grid uses for cell (r, c).
func GridID(r, c int) string {
	return fmt.Sprintf(gridIDFmt, r, c)
}

// Grid builds a rows×cols orthogonal lattice with IDs "r,c" in row-major
// order. On a directed graph both directions of every link are added.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph[string], cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				g.AddVertex(GridID(r, c))
			}
		}
		link := func(u, v string) {
			w := cfg.weightFn(cfg.rng)
			g.AddEdge(u, v, core.WithWeight(w))
			if g.Directed() {
				g.AddEdge(v, u, core.WithWeight(w))
			}
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					link(GridID(r, c), GridID(r, c+1))
				}
				if r+1 < rows {
					link(GridID(r, c), GridID(r+1, c))
				}
			}
		}
		return nil
	}
}

// RandomSparse samples an Erdős–Rényi graph: each unordered pair (ordered
// pair on a directed graph) becomes an edge with probability p. Self-loops
// are never drawn. p strictly between 0 and 1 needs an RNG.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph[string], cfg builderConfig) error {
		if n < minSparseNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomSparse, n, minSparseNodes, ErrTooFewVertices)
		}
		if p < 0 || p > 1 {
			return fmt.Errorf("%s: p=%.6f not in [0,1]: %w", methodRandomSparse, p, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > 0 && p < 1 {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}

		ids := addVertices(g, cfg, n)
		keep := func() bool {
			if cfg.rng == nil {
				return p == 1
			}
			return cfg.rng.Float64() < p
		}
		directed := g.Directed()
		for i := 0; i < n; i++ {
			start := i + 1
			if directed {
				start = 0
			}
			for j := start; j < n; j++ {
				if i == j || !keep() {
					continue
				}
				addEdge(g, cfg, ids[i], ids[j])
			}
		}
		return nil
	}
}
