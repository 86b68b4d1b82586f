// Package config reads graph documents: a YAML description of a graph, an
// optional integer grid for flood fill, and the limits applied to every
// algorithm run by the command line tool.
package config

import "time"

// Document is the top-level YAML structure.
//
//	directed: true
//	vertices: [a, b, c]
//	edges:
//	  - {from: a, to: b, weight: 3}
//	  - {from: b, to: c, weight: -1, directed: false}
//	grid:
//	  - [1, 1, 0]
//	  - [0, 1, 1]
//	limits:
//	  step_budget: 100000
//	  timeout: 2s
type Document struct {
	Directed bool      `yaml:"directed"`
	Vertices []string  `yaml:"vertices,omitempty"`
	Edges    []EdgeDef `yaml:"edges,omitempty"`
	Grid     [][]int   `yaml:"grid,omitempty"`
	Limits   Limits    `yaml:"limits,omitempty"`
}

// EdgeDef is one edge of the document. Weight defaults to 1 and Directed to
// the document-level value.
type EdgeDef struct {
	From     string `yaml:"from"`
	To       string `yaml:"to"`
	Weight   *int64 `yaml:"weight,omitempty"`
	Directed *bool  `yaml:"directed,omitempty"`
}

// Limits bounds the work of a single algorithm run. Zero means unlimited.
type Limits struct {
	StepBudget int64         `yaml:"step_budget,omitempty"`
	Timeout    time.Duration `yaml:"timeout,omitempty"`
}
