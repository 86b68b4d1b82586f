package builder

import (
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/graphlab/core"
)

// Constructor applies a deterministic mutation to g using the resolved
// configuration. Constructors validate their parameters first and return
// sentinel errors; they never panic.
type Constructor func(g *core.Graph[string], cfg builderConfig) error

// BuildGraph creates a graph with gopts, resolves bopts and applies cons in
// order. The first constructor error is returned wrapped as
// "BuildGraph: %w"; no partial graph is returned.
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph[string], error) {
	g := core.NewGraph[string](gopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// kinds maps topology names to factories taking a single size parameter.
var kinds = map[string]func(n int) Constructor{
	"path":     Path,
	"cycle":    Cycle,
	"star":     Star,
	"wheel":    Wheel,
	"complete": Complete,
}

// Kinds lists the names accepted by ByName, sorted.
func Kinds() []string {
	out := make([]string, 0, len(kinds))
	for k := range kinds {
		out = append(out, k)
	}
	sort.Strings(out)

	return out
}

// ByName returns the size-parameterised constructor registered as name
// ("path", "cycle", "star", "wheel", "complete").
func ByName(name string, n int) (Constructor, error) {
	f, ok := kinds[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%w %q (want one of %s)", ErrUnknownKind, name, strings.Join(Kinds(), ", "))
	}

	return f(n), nil
}
