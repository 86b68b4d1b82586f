package config

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid document")

// Validate checks that:
//   - every edge names both endpoints
//   - vertex ids are unique
//   - limits are not negative
//   - grid rows have equal length
func Validate(doc *Document) error {
	var errs []string

	seen := make(map[string]int, len(doc.Vertices))
	for i, v := range doc.Vertices {
		if v == "" {
			errs = append(errs, fmt.Sprintf("vertices[%d]: id is required", i))
			continue
		}
		if prev, ok := seen[v]; ok {
			errs = append(errs, fmt.Sprintf("duplicate vertex %q (vertices[%d] and vertices[%d])", v, prev, i))
			continue
		}
		seen[v] = i
	}

	for i, e := range doc.Edges {
		if e.From == "" {
			errs = append(errs, fmt.Sprintf("edges[%d]: from is required", i))
		}
		if e.To == "" {
			errs = append(errs, fmt.Sprintf("edges[%d]: to is required", i))
		}
	}

	if doc.Limits.StepBudget < 0 {
		errs = append(errs, "limits.step_budget must not be negative")
	}
	if doc.Limits.Timeout < 0 {
		errs = append(errs, "limits.timeout must not be negative")
	}

	for i, row := range doc.Grid {
		if len(row) != len(doc.Grid[0]) {
			errs = append(errs, fmt.Sprintf("grid[%d]: has %d cells, want %d", i, len(row), len(doc.Grid[0])))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w:\n  - %s", ErrInvalidConfig, strings.Join(errs, "\n  - "))
	}
	return nil
}
