package config

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/graphlab/core"
)

// FromGraph captures g as a document. Vertices without edges are listed
// explicitly; an edge carries its weight when it differs from the default
// and its direction when it differs from the graph default.
func FromGraph(g *core.Graph[string]) *Document {
	doc := &Document{Directed: g.Directed()}

	touched := make(map[string]bool)
	for _, e := range g.Edges() {
		touched[e.From], touched[e.To] = true, true
		def := EdgeDef{From: e.From, To: e.To}
		if e.Weight != core.DefaultWeight {
			w := e.Weight
			def.Weight = &w
		}
		if e.Directed != doc.Directed {
			d := e.Directed
			def.Directed = &d
		}
		doc.Edges = append(doc.Edges, def)
	}
	for _, v := range g.Vertices() {
		if !touched[v] {
			doc.Vertices = append(doc.Vertices, v)
		}
	}

	return doc
}

// Write encodes the document as YAML.
func (d *Document) Write(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(d); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return enc.Close()
}
