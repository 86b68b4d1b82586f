package bfs_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphlab/bfs"
	"github.com/katalvlaran/graphlab/core"
)

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	_, err := bfs.BFS[string](nil, "A")
	assert.ErrorIs(t, err, bfs.ErrGraphNil)

	g := core.NewGraph[string]()
	g.AddVertex("A")
	_, err = bfs.BFS(g, "A", bfs.WithMaxDepth(-1))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)
}

// TestBFS_UnknownStart treats an unseen start as an isolated vertex.
func TestBFS_UnknownStart(t *testing.T) {
	g := core.NewGraph[int]()
	g.AddEdge(1, 2)

	res, err := bfs.BFS(g, 99)
	require.NoError(t, err)
	assert.Equal(t, []int{99}, res.Order)
	assert.Equal(t, 0, res.Depth[99])
}

// TestBFS_ScenarioOrder checks the insertion-order visit sequence on a small undirected graph.
func TestBFS_ScenarioOrder(t *testing.T) {
	g := core.NewGraph[int]()
	g.AddEdge(0, 1)
	g.AddEdge(0, 2)
	g.AddEdge(1, 3)
	g.AddEdge(2, 3)
	g.AddEdge(3, 4)

	res, err := bfs.BFS(g, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, res.Order)
	assert.Equal(t, map[int]int{0: 0, 1: 1, 2: 1, 3: 2, 4: 3}, res.Depth)
	assert.Equal(t, 1, res.Parent[3], "first discoverer wins")

	path, err := res.PathTo(4)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 3, 4}, path)
}

// TestBFS_DirectedFollowsForwardOnly verifies directed edges are not walked backwards.
func TestBFS_DirectedFollowsForwardOnly(t *testing.T) {
	g := core.NewGraph[string](core.WithDirected(true))
	g.AddEdge("A", "B")
	g.AddEdge("C", "A")

	res, err := bfs.BFS(g, "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, res.Order)

	_, err = res.PathTo("C")
	assert.ErrorIs(t, err, bfs.ErrNoPath)
}

// TestBFS_ParallelEdgesAndLoops verifies a vertex is queued once despite duplicates.
func TestBFS_ParallelEdgesAndLoops(t *testing.T) {
	g := core.NewGraph[string]()
	g.AddEdge("A", "B")
	g.AddEdge("A", "B")
	g.AddEdge("A", "A")
	g.AddEdge("B", "C")

	res, err := bfs.BFS(g, "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, res.Order)
}

// TestBFS_MaxDepth stops expansion beyond the configured depth.
func TestBFS_MaxDepth(t *testing.T) {
	g := core.NewGraph[int]()
	for i := 0; i < 5; i++ {
		g.AddEdge(i, i+1)
	}

	res, err := bfs.BFS(g, 0, bfs.WithMaxDepth(2))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, res.Order)

	res, err = bfs.BFS(g, 0, bfs.WithMaxDepth(0))
	require.NoError(t, err)
	assert.Len(t, res.Order, 6, "zero disables the limit")
}

// TestBFS_Cancelled returns the context error on a cancelled context.
func TestBFS_Cancelled(t *testing.T) {
	g := core.NewGraph[int]()
	g.AddEdge(0, 1)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := bfs.BFS(g, 0, bfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

// TestWalk_SharedVisited sweeps two components through one visited set.
func TestWalk_SharedVisited(t *testing.T) {
	g := core.NewGraph[string]()
	g.AddEdge("A", "B")
	g.AddEdge("C", "D")

	visited := map[string]bool{}
	first, err := bfs.Walk(g, "A", visited)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, first.Order)

	again, err := bfs.Walk(g, "B", visited)
	require.NoError(t, err)
	assert.Empty(t, again.Order, "already visited start yields nothing")

	second, err := bfs.Walk(g, "C", visited)
	require.NoError(t, err)
	assert.Equal(t, []string{"C", "D"}, second.Order)
	assert.Len(t, visited, 4)
}

// TestBFS_DepthNonDecreasing checks on random graphs that depths never
// decrease along the visit order and that every tree edge spans one level.
func TestBFS_DepthNonDecreasing(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for trial := 0; trial < 20; trial++ {
		g := core.NewGraph[int]()
		n := 30
		for i := 0; i < n; i++ {
			g.AddVertex(i)
		}
		for e := 0; e < 60; e++ {
			g.AddEdge(rng.Intn(n), rng.Intn(n))
		}

		res, err := bfs.BFS(g, 0)
		require.NoError(t, err)
		seen := map[int]bool{}
		for i, v := range res.Order {
			assert.False(t, seen[v], "vertex %d visited twice", v)
			seen[v] = true
			if i > 0 {
				assert.LessOrEqual(t, res.Depth[res.Order[i-1]], res.Depth[v])
			}
			if p, ok := res.Parent[v]; ok {
				assert.Equal(t, res.Depth[p]+1, res.Depth[v])
			}
		}
	}
}
