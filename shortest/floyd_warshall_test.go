package shortest_test

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphlab/core"
	"github.com/katalvlaran/graphlab/shortest"
)

func TestFloydWarshall_Errors(t *testing.T) {
	_, err := shortest.FloydWarshall[int](nil)
	assert.ErrorIs(t, err, shortest.ErrGraphNil)

	_, err = shortest.FloydWarshall(scenarioGraph(), shortest.WithStepBudget(-5))
	assert.ErrorIs(t, err, shortest.ErrOptionViolation)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = shortest.FloydWarshall(scenarioGraph(), shortest.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)

	_, err = shortest.FloydWarshall(scenarioGraph(), shortest.WithStepBudget(4))
	assert.ErrorIs(t, err, shortest.ErrBudgetExceeded)
}

func TestFloydWarshall_Scenario(t *testing.T) {
	m, err := shortest.FloydWarshall(scenarioGraph())
	require.NoError(t, err)
	assert.False(t, m.NegativeCycle)
	assert.Equal(t, []int{0, 1, 2, 3}, m.Nodes)

	assert.Equal(t, map[int]int64{0: 0, 1: 1, 2: -2, 3: 0}, m.Row(0))
	// Nothing leads back to 0.
	d, ok := m.Dist(3, 0)
	assert.True(t, ok)
	assert.Equal(t, shortest.Inf, d)
	d, _ = m.Dist(3, 2)
	assert.Equal(t, int64(-2), d)

	path, err := m.Path(0, 3)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3}, path)

	_, err = m.Path(3, 0)
	assert.ErrorIs(t, err, shortest.ErrNoPath)
	_, err = m.Path(0, 42)
	assert.ErrorIs(t, err, shortest.ErrNoPath)
	assert.Nil(t, m.Row(42))
}

// TestFloydWarshall_ParallelEdges keeps the lightest direct edge and mirrors undirected ones.
func TestFloydWarshall_ParallelEdges(t *testing.T) {
	g := core.NewGraph[string]()
	g.AddEdge("A", "B", core.WithWeight(9))
	g.AddEdge("A", "B", core.WithWeight(4))
	g.AddEdge("B", "C", core.WithWeight(1), core.WithEdgeDirected(true))

	m, err := shortest.FloydWarshall(g)
	require.NoError(t, err)
	d, _ := m.Dist("B", "A")
	assert.Equal(t, int64(4), d)
	d, _ = m.Dist("A", "C")
	assert.Equal(t, int64(5), d)
	d, _ = m.Dist("C", "B")
	assert.Equal(t, shortest.Inf, d)
}

func TestFloydWarshall_NegativeCycle(t *testing.T) {
	g := core.NewGraph[int](core.WithDirected(true))
	g.AddEdge(0, 1, core.WithWeight(1))
	g.AddEdge(1, 2, core.WithWeight(-2))
	g.AddEdge(2, 0, core.WithWeight(-1))
	g.AddEdge(2, 3, core.WithWeight(1))
	g.AddEdge(4, 0, core.WithWeight(1))

	m, err := shortest.FloydWarshall(g)
	require.NoError(t, err)
	assert.True(t, m.NegativeCycle)

	d, _ := m.Dist(4, 3)
	assert.Equal(t, shortest.NegInf, d)
	d, _ = m.Dist(3, 0)
	assert.Equal(t, shortest.Inf, d, "3 has no way back")
	_, err = m.Path(0, 3)
	assert.ErrorIs(t, err, shortest.ErrNegativeCycle)
}

func TestFloydWarshall_NegativeSelfLoop(t *testing.T) {
	g := core.NewGraph[string](core.WithDirected(true))
	g.AddEdge("A", "A", core.WithWeight(-1))
	g.AddEdge("B", "C")

	m, err := shortest.FloydWarshall(g)
	require.NoError(t, err)
	assert.True(t, m.NegativeCycle)
	d, _ := m.Dist("B", "C")
	assert.Equal(t, int64(1), d, "unrelated pairs stay exact")
}

// TestFloydWarshall_NoOverflow checks sums of huge weights saturate.
func TestFloydWarshall_NoOverflow(t *testing.T) {
	g := core.NewGraph[int](core.WithDirected(true))
	g.AddEdge(0, 1, core.WithWeight(math.MaxInt64-1))
	g.AddEdge(1, 2, core.WithWeight(math.MaxInt64-1))

	m, err := shortest.FloydWarshall(g)
	require.NoError(t, err)
	d, _ := m.Dist(0, 2)
	assert.Equal(t, shortest.Inf, d)
	assert.False(t, m.NegativeCycle)
}
