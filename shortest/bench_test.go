package shortest_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/graphlab/core"
	"github.com/katalvlaran/graphlab/shortest"
)

// randomDirected builds a reproducible directed graph with non-negative weights.
func randomDirected(n, m int) *core.Graph[int] {
	rng := rand.New(rand.NewSource(1))
	g := core.NewGraph[int](core.WithDirected(true))
	for i := 0; i < n; i++ {
		g.AddVertex(i)
	}
	for e := 0; e < m; e++ {
		g.AddEdge(rng.Intn(n), rng.Intn(n), core.WithWeight(int64(rng.Intn(100))))
	}

	return g
}

func BenchmarkBellmanFord_500x4000(b *testing.B) {
	g := randomDirected(500, 4000)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = shortest.BellmanFord(g, 0)
	}
}

func BenchmarkDijkstra_500x4000(b *testing.B) {
	g := randomDirected(500, 4000)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = shortest.Dijkstra(g, 0)
	}
}

func BenchmarkFloydWarshall_150(b *testing.B) {
	g := randomDirected(150, 1500)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = shortest.FloydWarshall(g)
	}
}
