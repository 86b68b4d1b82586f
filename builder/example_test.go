package builder_test

import (
	"fmt"

	"github.com/katalvlaran/graphlab/builder"
	"github.com/katalvlaran/graphlab/core"
)

// ExampleBuildGraph composes a wheel with lettered rim vertices.
func ExampleBuildGraph() {
	g, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithIDScheme(builder.ExcelColumnIDFn)},
		builder.Wheel(5),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(g.Vertices())
	fmt.Println(g.EdgeCount(), len(g.Neighbors(builder.Center)))
	// Output:
	// [A B C D Center]
	// 8 4
}

// ExampleCompleteBipartite builds a directed K_{2,2}.
func ExampleCompleteBipartite() {
	g, _ := builder.BuildGraph([]core.GraphOption{core.WithDirected(true)}, nil, builder.CompleteBipartite(2, 2))
	for _, e := range g.Edges() {
		fmt.Printf("%s→%s ", e.From, e.To)
	}
	fmt.Println()
	// Output:
	// L0→R0 L0→R1 L1→R0 L1→R1
}
