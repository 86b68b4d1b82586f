package shortest_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphlab/core"
	"github.com/katalvlaran/graphlab/shortest"
)

func TestDijkstra_NegativeWeightRejected(t *testing.T) {
	_, err := shortest.Dijkstra(scenarioGraph(), 0)
	assert.ErrorIs(t, err, shortest.ErrNegativeWeight)

	_, err = shortest.Dijkstra[int](nil, 0)
	assert.ErrorIs(t, err, shortest.ErrGraphNil)
}

// TestDijkstra_Basic runs on an undirected weighted square with a diagonal.
func TestDijkstra_Basic(t *testing.T) {
	g := core.NewGraph[string]()
	g.AddEdge("A", "B", core.WithWeight(1))
	g.AddEdge("B", "C", core.WithWeight(2))
	g.AddEdge("C", "D", core.WithWeight(1))
	g.AddEdge("D", "A", core.WithWeight(7))
	g.AddEdge("A", "C", core.WithWeight(5))
	g.AddVertex("island")

	res, err := shortest.Dijkstra(g, "A")
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{"A": 0, "B": 1, "C": 3, "D": 4, "island": shortest.Inf}, res.Dist)

	path, err := res.PathTo("D")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "D"}, path)

	_, err = res.PathTo("island")
	assert.ErrorIs(t, err, shortest.ErrNoPath)
}

// TestDijkstra_AgreesWithBellmanFord on a non-negative directed graph.
func TestDijkstra_AgreesWithBellmanFord(t *testing.T) {
	g := core.NewGraph[int](core.WithDirected(true))
	edges := [][3]int64{{0, 1, 4}, {0, 2, 1}, {2, 1, 2}, {1, 3, 1}, {2, 3, 5}, {3, 4, 3}, {4, 0, 0}}
	for _, e := range edges {
		g.AddEdge(int(e[0]), int(e[1]), core.WithWeight(e[2]))
	}

	dj, err := shortest.Dijkstra(g, 0)
	require.NoError(t, err)
	bf, err := shortest.BellmanFord(g, 0)
	require.NoError(t, err)
	assert.Equal(t, bf.Dist, dj.Dist)
	assert.Zero(t, dj.Passes)
}

// TestDijkstra_LogsDebugRecord checks WithLogger receives the run summary.
func TestDijkstra_LogsDebugRecord(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	g := core.NewGraph[string]()
	g.AddEdge("A", "B")
	_, err := shortest.Dijkstra(g, "A", shortest.WithLogger(logger))
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "dijkstra finished")
	assert.Contains(t, buf.String(), "settled=2")
}

func TestDijkstra_StepBudget(t *testing.T) {
	g := core.NewGraph[int]()
	for i := 0; i < 10; i++ {
		g.AddEdge(i, i+1)
	}
	_, err := shortest.Dijkstra(g, 0, shortest.WithStepBudget(5))
	assert.ErrorIs(t, err, shortest.ErrBudgetExceeded)
}
