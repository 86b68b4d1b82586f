package shortest_test

import (
	"context"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphlab/core"
	"github.com/katalvlaran/graphlab/shortest"
)

// scenarioGraph is the directed five-edge graph with one negative arc and a
// zero-weight cycle 1→2→3→1.
func scenarioGraph() *core.Graph[int] {
	return core.FromEdges([]core.Edge[int]{
		{From: 0, To: 1, Weight: 1, Directed: true},
		{From: 0, To: 2, Weight: 4, Directed: true},
		{From: 1, To: 2, Weight: -3, Directed: true},
		{From: 2, To: 3, Weight: 2, Directed: true},
		{From: 3, To: 1, Weight: 1, Directed: true},
	}, core.WithDirected(true))
}

func TestBellmanFord_Errors(t *testing.T) {
	_, err := shortest.BellmanFord[int](nil, 0)
	assert.ErrorIs(t, err, shortest.ErrGraphNil)

	_, err = shortest.BellmanFord(scenarioGraph(), 0, shortest.WithStepBudget(-1))
	assert.ErrorIs(t, err, shortest.ErrOptionViolation)
}

func TestBellmanFord_Scenario(t *testing.T) {
	res, err := shortest.BellmanFord(scenarioGraph(), 0)
	require.NoError(t, err)
	assert.False(t, res.NegativeCycle)
	assert.Empty(t, res.Unreliable)

	want := []int64{0, 1, -2, 0}
	for v, d := range want {
		got, ok := res.Distance(v)
		assert.True(t, ok, "vertex %d", v)
		assert.Equal(t, d, got, "vertex %d", v)
	}

	path, err := res.PathTo(3)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3}, path)
}

func TestBellmanFord_NegativeTriangle(t *testing.T) {
	g := core.NewGraph[string](core.WithDirected(true))
	g.AddEdge("S", "A", core.WithWeight(1))
	g.AddEdge("A", "B", core.WithWeight(1))
	g.AddEdge("B", "C", core.WithWeight(-3))
	g.AddEdge("C", "A", core.WithWeight(1))
	g.AddEdge("C", "D", core.WithWeight(5))
	g.AddEdge("S", "E", core.WithWeight(2))

	res, err := shortest.BellmanFord(g, "S")
	require.NoError(t, err, "a negative cycle is a flag, not an error")
	assert.True(t, res.NegativeCycle)

	for _, v := range []string{"A", "B", "C", "D"} {
		assert.True(t, res.Unreliable[v], v)
		assert.Equal(t, shortest.NegInf, res.Dist[v], v)
		_, err := res.PathTo(v)
		assert.ErrorIs(t, err, shortest.ErrNegativeCycle)
	}
	// Off-cycle vertices keep exact distances.
	d, ok := res.Distance("E")
	assert.True(t, ok)
	assert.Equal(t, int64(2), d)
	assert.False(t, res.Unreliable["S"])
}

// TestBellmanFord_UnreachableNegativeCycle keeps the flag off when the cycle cannot be reached.
func TestBellmanFord_UnreachableNegativeCycle(t *testing.T) {
	g := core.NewGraph[int](core.WithDirected(true))
	g.AddEdge(0, 1, core.WithWeight(3))
	g.AddEdge(2, 3, core.WithWeight(-1))
	g.AddEdge(3, 2, core.WithWeight(-1))

	res, err := shortest.BellmanFord(g, 0)
	require.NoError(t, err)
	assert.False(t, res.NegativeCycle)
	d, ok := res.Distance(2)
	assert.False(t, ok)
	assert.Equal(t, shortest.Inf, d)
	_, err = res.PathTo(2)
	assert.ErrorIs(t, err, shortest.ErrNoPath)
}

// TestBellmanFord_UndirectedNegativeEdge treats a negative undirected edge as a 2-cycle.
func TestBellmanFord_UndirectedNegativeEdge(t *testing.T) {
	g := core.NewGraph[string]()
	g.AddEdge("A", "B", core.WithWeight(-1))

	res, err := shortest.BellmanFord(g, "A")
	require.NoError(t, err)
	assert.True(t, res.NegativeCycle)
}

func TestBellmanFord_NegativeSelfLoop(t *testing.T) {
	g := core.NewGraph[int](core.WithDirected(true))
	g.AddEdge(0, 0, core.WithWeight(-1))

	res, err := shortest.BellmanFord(g, 0)
	require.NoError(t, err)
	assert.True(t, res.NegativeCycle)
	assert.Equal(t, shortest.NegInf, res.Dist[0])
}

func TestBellmanFord_UnknownSource(t *testing.T) {
	g := core.NewGraph[string]()
	g.AddEdge("A", "B")

	res, err := shortest.BellmanFord(g, "Z")
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{"A": shortest.Inf, "B": shortest.Inf, "Z": 0}, res.Dist)
}

// TestBellmanFord_EarlyExit stops after the first pass that changes nothing.
func TestBellmanFord_EarlyExit(t *testing.T) {
	g := core.NewGraph[int](core.WithDirected(true))
	for i := 0; i < 50; i++ {
		g.AddEdge(i, i+1, core.WithWeight(2))
	}

	res, err := shortest.BellmanFord(g, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Passes, "forward-ordered chain settles in one pass plus a quiet one")
	assert.Equal(t, int64(100), res.Dist[50])
}

// TestBellmanFord_SaturatingWeights adds huge weights without wrapping around.
func TestBellmanFord_SaturatingWeights(t *testing.T) {
	g := core.NewGraph[string](core.WithDirected(true))
	g.AddEdge("A", "B", core.WithWeight(math.MaxInt64-1))
	g.AddEdge("B", "C", core.WithWeight(math.MaxInt64-1))
	g.AddEdge("A", "D", core.WithWeight(math.MinInt64+1))
	g.AddEdge("D", "E", core.WithWeight(math.MinInt64+1))

	res, err := shortest.BellmanFord(g, "A")
	require.NoError(t, err)
	assert.Equal(t, int64(math.MaxInt64-1), res.Dist["B"])
	assert.Equal(t, shortest.Inf, res.Dist["C"], "overflow saturates to unreachable")
	assert.Greater(t, res.Dist["E"], shortest.NegInf, "underflow never hits the negative-cycle mark")
	assert.Less(t, res.Dist["E"], int64(0))
	assert.False(t, res.NegativeCycle)
}

// TestBellmanFord_CycleBelowFloor finds a negative cycle whose sums run past the int64 floor.
func TestBellmanFord_CycleBelowFloor(t *testing.T) {
	g := core.NewGraph[int](core.WithDirected(true))
	g.AddEdge(0, 1, core.WithWeight(-(1 << 61)))
	g.AddEdge(1, 2, core.WithWeight(-(1 << 61)))
	g.AddEdge(2, 0, core.WithWeight(-(1 << 61)))
	for v := 3; v < 20; v++ {
		g.AddVertex(v)
	}

	res, err := shortest.BellmanFord(g, 0)
	require.NoError(t, err)
	assert.True(t, res.NegativeCycle)
	for v := 0; v < 3; v++ {
		assert.Equal(t, shortest.NegInf, res.Dist[v], "vertex %d", v)
		_, ok := res.Distance(v)
		assert.False(t, ok, "vertex %d", v)
	}
	assert.Equal(t, shortest.Inf, res.Dist[7])

	m, err := shortest.FloydWarshall(g)
	require.NoError(t, err)
	assert.True(t, m.NegativeCycle)
	assert.Equal(t, m.Row(0), res.Dist)
}

// TestBellmanFord_CycleAtFloor flags a light cycle reached through an edge that already sits on the floor.
func TestBellmanFord_CycleAtFloor(t *testing.T) {
	g := core.NewGraph[string](core.WithDirected(true))
	g.AddEdge("S", "A", core.WithWeight(math.MinInt64+1))
	g.AddEdge("S", "B", core.WithWeight(math.MinInt64+1))
	g.AddEdge("A", "B", core.WithWeight(-1))
	g.AddEdge("B", "A", core.WithWeight(-1))

	res, err := shortest.BellmanFord(g, "S")
	require.NoError(t, err)
	assert.True(t, res.NegativeCycle)
	assert.Equal(t, int64(0), res.Dist["S"])
	assert.Equal(t, shortest.NegInf, res.Dist["A"])
	assert.Equal(t, shortest.NegInf, res.Dist["B"])

	m, err := shortest.FloydWarshall(g)
	require.NoError(t, err)
	assert.Equal(t, m.Row("S"), res.Dist)
}

func TestBellmanFord_StepBudget(t *testing.T) {
	_, err := shortest.BellmanFord(scenarioGraph(), 0, shortest.WithStepBudget(3))
	assert.ErrorIs(t, err, shortest.ErrBudgetExceeded)

	_, err = shortest.BellmanFord(scenarioGraph(), 0, shortest.WithStepBudget(1000))
	assert.NoError(t, err)
}

func TestBellmanFord_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := shortest.BellmanFord(scenarioGraph(), 0, shortest.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

// TestBellmanFord_AgreesWithFloydWarshall compares every BF run with the FW row on random graphs.
func TestBellmanFord_AgreesWithFloydWarshall(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for trial := 0; trial < 30; trial++ {
		g := core.NewGraph[int](core.WithDirected(true))
		n := 8
		for i := 0; i < n; i++ {
			g.AddVertex(i)
		}
		for e := 0; e < 16; e++ {
			// mostly positive weights so most trials have no negative cycle
			g.AddEdge(rng.Intn(n), rng.Intn(n), core.WithWeight(int64(rng.Intn(12)-2)))
		}

		m, err := shortest.FloydWarshall(g)
		require.NoError(t, err)
		for s := 0; s < n; s++ {
			res, err := shortest.BellmanFord(g, s)
			require.NoError(t, err)
			assert.Equal(t, m.Row(s), res.Dist, "trial %d source %d", trial, s)
		}
	}
}
