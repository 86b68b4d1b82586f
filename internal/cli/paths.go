package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/graphlab/core"
	"github.com/katalvlaran/graphlab/internal/ctxlog"
	"github.com/katalvlaran/graphlab/shortest"
)

// shortestOptions applies the document limits and the run logger.
func (a *app) shortestOptions(ctx context.Context) []shortest.Option {
	return []shortest.Option{
		shortest.WithContext(ctx),
		shortest.WithStepBudget(a.stepBudget()),
		shortest.WithLogger(ctxlog.FromContext(ctx)),
	}
}

type singleSource func(*core.Graph[string], string, ...shortest.Option) (*shortest.Result[string], error)

func (a *app) singleSourceCommand(use, short, algorithm string, run singleSource) *cobra.Command {
	var source string
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := a.graph(cmd)
			if err != nil {
				return err
			}
			ctx, cancel := a.runContext(cmd)
			defer cancel()

			done := a.rec.Track(algorithm)
			res, err := run(g, source, a.shortestOptions(ctx)...)
			negative := res != nil && res.NegativeCycle
			a.observe(cmd, algorithm, done, err, negative)
			if err != nil {
				return err
			}

			p := a.printer(cmd.OutOrStdout())
			p.Heading("%s from %s", algorithm, source)
			if negative {
				p.Warn("negative cycle reachable from %s", source)
			}
			printDistances(p, g.Vertices(), res)
			return nil
		},
	}
	cmd.Flags().StringVar(&source, "source", "", "source vertex")
	_ = cmd.MarkFlagRequired("source")
	return cmd
}

// printDistances lists every vertex in graph order, with the source last
// when it is not part of the graph.
func printDistances(p *printer, vertices []string, res *shortest.Result[string]) {
	if _, known := res.Dist[res.Source]; known && !contains(vertices, res.Source) {
		vertices = append(vertices, res.Source)
	}
	t := newTable("VERTEX", "DIST", "PATH")
	for _, v := range vertices {
		path := "-"
		if hops, err := res.PathTo(v); err == nil {
			path = join(hops)
		}
		t.AddRow(v, formatDist(res.Dist[v]), path)
	}
	t.Render(p)
}

func contains(vs []string, x string) bool {
	for _, v := range vs {
		if v == x {
			return true
		}
	}
	return false
}

func (a *app) bellmanFordCommand() *cobra.Command {
	return a.singleSourceCommand("bellman-ford",
		"Single-source distances with negative weights and negative-cycle marking",
		"bellman-ford", shortest.BellmanFord[string])
}

func (a *app) dijkstraCommand() *cobra.Command {
	return a.singleSourceCommand("dijkstra",
		"Single-source distances for non-negative weights",
		"dijkstra", shortest.Dijkstra[string])
}

func (a *app) floydWarshallCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "floyd-warshall",
		Short: "All-pairs distance matrix",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := a.graph(cmd)
			if err != nil {
				return err
			}
			ctx, cancel := a.runContext(cmd)
			defer cancel()

			done := a.rec.Track("floyd-warshall")
			m, err := shortest.FloydWarshall(g, a.shortestOptions(ctx)...)
			negative := m != nil && m.NegativeCycle
			a.observe(cmd, "floyd-warshall", done, err, negative)
			if err != nil {
				return err
			}

			p := a.printer(cmd.OutOrStdout())
			p.Heading("all-pairs distances (%d vertices)", len(m.Nodes))
			if negative {
				p.Warn("graph contains a negative cycle")
			}
			t := newTable(append([]string{""}, m.Nodes...)...)
			for _, u := range m.Nodes {
				row := []string{u}
				for _, v := range m.Nodes {
					d, _ := m.Dist(u, v)
					row = append(row, formatDist(d))
				}
				t.AddRow(row...)
			}
			t.Render(p)
			return nil
		},
	}
}
