package shortest_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphlab/builder"
	"github.com/katalvlaran/graphlab/core"
	"github.com/katalvlaran/graphlab/shortest"
)

// TestBellmanFord_SparseFixtures checks BF against FW on seeded sparse
// digraphs whose weights may be negative.
func TestBellmanFord_SparseFixtures(t *testing.T) {
	for seed := int64(1); seed <= 10; seed++ {
		g, err := builder.BuildGraph(
			[]core.GraphOption{core.WithDirected(true)},
			[]builder.BuilderOption{builder.WithSeed(seed), builder.WithWeightFn(builder.UniformWeightFn(-1, 9))},
			builder.RandomSparse(12, 0.25),
		)
		require.NoError(t, err)

		m, err := shortest.FloydWarshall(g)
		require.NoError(t, err)
		for _, s := range g.Vertices() {
			res, err := shortest.BellmanFord(g, s)
			require.NoError(t, err)
			assert.Equal(t, m.Row(s), res.Dist, "seed %d source %s", seed, s)
		}
	}
}

// TestDijkstra_GridFixture compares Dijkstra with BF on a weighted lattice.
func TestDijkstra_GridFixture(t *testing.T) {
	g, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithSeed(3), builder.WithWeightFn(builder.UniformWeightFn(1, 9))},
		builder.Grid(6, 6),
	)
	require.NoError(t, err)

	src := builder.GridID(0, 0)
	dj, err := shortest.Dijkstra(g, src)
	require.NoError(t, err)
	bf, err := shortest.BellmanFord(g, src)
	require.NoError(t, err)
	assert.Equal(t, bf.Dist, dj.Dist)

	// every lattice cell is reachable and at least Manhattan distance away
	d, ok := dj.Distance(builder.GridID(5, 5))
	require.True(t, ok)
	assert.GreaterOrEqual(t, d, int64(10))
}
