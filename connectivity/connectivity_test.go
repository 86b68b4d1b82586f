package connectivity_test

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/graphlab/connectivity"
	"github.com/katalvlaran/graphlab/core"
)

// cycleGraph builds the undirected cycle 0-1-…-(n-1)-0.
func cycleGraph(n int) *core.Graph[int] {
	g := core.NewGraph[int]()
	for i := 0; i < n; i++ {
		g.AddEdge(i, (i+1)%n)
	}

	return g
}

func TestCountComponents(t *testing.T) {
	assert.Equal(t, 0, connectivity.CountComponents[int](nil))
	assert.Equal(t, 0, connectivity.CountComponents(core.NewGraph[int]()))

	g := core.NewGraph[string]()
	g.AddEdge("A", "B")
	g.AddEdge("B", "C")
	g.AddEdge("D", "E")
	g.AddVertex("F")
	assert.Equal(t, 3, connectivity.CountComponents(g))

	want := [][]string{{"A", "B", "C"}, {"D", "E"}, {"F"}}
	if diff := cmp.Diff(want, connectivity.Components(g)); diff != "" {
		t.Errorf("Components mismatch (-want +got):\n%s", diff)
	}
}

// TestCountComponents_DirectedIsWeak counts weak components regardless of arc direction.
func TestCountComponents_DirectedIsWeak(t *testing.T) {
	g := core.NewGraph[int](core.WithDirected(true))
	// 2→1 is seen before 1 has any out-arc; following arcs only would split {1,2}.
	g.AddVertex(1)
	g.AddEdge(2, 1)
	g.AddEdge(3, 4)
	assert.Equal(t, 2, connectivity.CountComponents(g))
}

// TestCountComponents_InsertionOrderIndependent shuffles the same edge set.
func TestCountComponents_InsertionOrderIndependent(t *testing.T) {
	edges := []core.Edge[int]{
		{From: 0, To: 1}, {From: 1, To: 2}, {From: 3, To: 4},
		{From: 5, To: 5}, {From: 6, To: 7, Directed: true}, {From: 8, To: 7, Directed: true},
	}
	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 25; trial++ {
		shuffled := append([]core.Edge[int](nil), edges...)
		rng.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })
		g := core.FromEdges(shuffled)
		g.AddVertex(9)
		assert.Equal(t, 5, connectivity.CountComponents(g), "trial %d", trial)
	}
}

func TestIsBipartite(t *testing.T) {
	assert.True(t, connectivity.IsBipartite[int](nil))
	assert.True(t, connectivity.IsBipartite(core.NewGraph[int]()))
	assert.True(t, connectivity.IsBipartite(cycleGraph(4)), "even cycle")
	assert.True(t, connectivity.IsBipartite(cycleGraph(6)), "even cycle")
	assert.False(t, connectivity.IsBipartite(cycleGraph(3)), "odd cycle")
	assert.False(t, connectivity.IsBipartite(cycleGraph(5)), "odd cycle")

	loop := core.NewGraph[string]()
	loop.AddEdge("A", "A")
	assert.False(t, connectivity.IsBipartite(loop), "self-loop")

	// Second component carries the odd cycle.
	g := cycleGraph(4)
	g.AddEdge(10, 11)
	g.AddEdge(11, 12)
	g.AddEdge(12, 10)
	assert.False(t, connectivity.IsBipartite(g))
}

func TestTwoColoring(t *testing.T) {
	g := core.NewGraph[string](core.WithDirected(true))
	g.AddEdge("A", "B")
	g.AddEdge("C", "B")
	g.AddVertex("D")

	color, ok := connectivity.TwoColoring(g)
	assert.True(t, ok)
	assert.Len(t, color, 4)
	for _, e := range g.Edges() {
		assert.NotEqual(t, color[e.From], color[e.To], "%s-%s", e.From, e.To)
	}
	assert.Equal(t, connectivity.ColorA, color["A"])
	assert.Equal(t, connectivity.ColorA, color["D"])
}

func TestHasCycle(t *testing.T) {
	assert.False(t, connectivity.HasCycle[int](nil, true))

	tree := core.NewGraph[int]()
	tree.AddEdge(1, 2)
	tree.AddEdge(1, 3)
	assert.False(t, connectivity.HasCycle(tree, false))
	assert.True(t, connectivity.HasCycle(cycleGraph(3), false))

	dag := core.NewGraph[string](core.WithDirected(true))
	dag.AddEdge("A", "B")
	dag.AddEdge("B", "C")
	dag.AddEdge("A", "C")
	assert.False(t, connectivity.HasCycle(dag, true))
	dag.AddEdge("C", "A")
	assert.True(t, connectivity.HasCycle(dag, true))

	cycle, ok := connectivity.FindCycle(dag, true)
	assert.True(t, ok)
	assert.Equal(t, cycle[0], cycle[len(cycle)-1])
}
