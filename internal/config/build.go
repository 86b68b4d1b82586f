package config

import "github.com/katalvlaran/graphlab/core"

// Build turns the document into a graph. Listed vertices come first, in
// document order, so isolated vertices survive; edge endpoints not listed
// are added as they appear.
func (d *Document) Build() *core.Graph[string] {
	g := core.NewGraph[string](core.WithDirected(d.Directed))
	for _, v := range d.Vertices {
		g.AddVertex(v)
	}
	for _, e := range d.Edges {
		var opts []core.EdgeOption
		if e.Weight != nil {
			opts = append(opts, core.WithWeight(*e.Weight))
		}
		if e.Directed != nil {
			opts = append(opts, core.WithEdgeDirected(*e.Directed))
		}
		g.AddEdge(e.From, e.To, opts...)
	}
	return g
}
