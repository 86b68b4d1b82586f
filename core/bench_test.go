// Package core_test provides benchmarks for core.Graph operations.
package core_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/graphlab/core"
)

// BenchmarkAddEdge_Undirected measures adding edges with the default configuration.
func BenchmarkAddEdge_Undirected(b *testing.B) {
	g := core.NewGraph[string]()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g.AddEdge("Root", fmt.Sprintf("N%d", i))
	}
}

// BenchmarkAddEdge_Directed measures adding weighted directed edges on int keys.
func BenchmarkAddEdge_Directed(b *testing.B) {
	g := core.NewGraph[int](core.WithDirected(true))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g.AddEdge(i%1000, (i+1)%1000, core.WithWeight(int64(i)))
	}
}

// BenchmarkNeighbors measures retrieving the adjacency list of a star center.
func BenchmarkNeighbors(b *testing.B) {
	g := core.NewGraph[int]()
	for i := 1; i <= 1000; i++ {
		g.AddEdge(0, i)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Neighbors(0)
	}
}
