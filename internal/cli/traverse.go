package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/graphlab/bfs"
	"github.com/katalvlaran/graphlab/connectivity"
	"github.com/katalvlaran/graphlab/dfs"
)

func (a *app) bfsCommand() *cobra.Command {
	var (
		start    string
		maxDepth int
	)
	cmd := &cobra.Command{
		Use:   "bfs",
		Short: "Breadth-first order, depth and parent of every reached vertex",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := a.graph(cmd)
			if err != nil {
				return err
			}
			ctx, cancel := a.runContext(cmd)
			defer cancel()

			done := a.rec.Track("bfs")
			res, err := bfs.BFS(g, start, bfs.WithContext(ctx), bfs.WithMaxDepth(maxDepth))
			a.observe(cmd, "bfs", done, err, false)
			if err != nil {
				return err
			}

			p := a.printer(cmd.OutOrStdout())
			p.Heading("BFS from %s", start)
			p.Line("order: %s", join(res.Order))
			t := newTable("VERTEX", "DEPTH", "PARENT")
			for _, v := range res.Order {
				parent := "-"
				if u, ok := res.Parent[v]; ok {
					parent = u
				}
				t.AddRow(v, fmt.Sprint(res.Depth[v]), parent)
			}
			t.Render(p)
			return nil
		},
	}
	cmd.Flags().StringVar(&start, "start", "", "start vertex")
	cmd.Flags().IntVar(&maxDepth, "max-depth", 0, "stop expanding past this depth (0 = unlimited)")
	_ = cmd.MarkFlagRequired("start")
	return cmd
}

func (a *app) dfsCommand() *cobra.Command {
	var (
		start    string
		maxDepth int
	)
	cmd := &cobra.Command{
		Use:   "dfs",
		Short: "Depth-first pre-order and post-order from a start vertex",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := a.graph(cmd)
			if err != nil {
				return err
			}
			ctx, cancel := a.runContext(cmd)
			defer cancel()

			done := a.rec.Track("dfs")
			res, err := dfs.DFS(g, start, dfs.WithContext(ctx), dfs.WithMaxDepth(maxDepth))
			a.observe(cmd, "dfs", done, err, false)
			if err != nil {
				return err
			}

			p := a.printer(cmd.OutOrStdout())
			p.Heading("DFS from %s", start)
			p.Line("pre-order:  %s", join(res.Order))
			p.Line("post-order: %s", join(res.PostOrder))
			return nil
		},
	}
	cmd.Flags().StringVar(&start, "start", "", "start vertex")
	cmd.Flags().IntVar(&maxDepth, "max-depth", -1, "do not descend past this depth (-1 = unlimited)")
	_ = cmd.MarkFlagRequired("start")
	return cmd
}

func (a *app) componentsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "components",
		Short: "Connected components (weak components for directed graphs)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := a.graph(cmd)
			if err != nil {
				return err
			}

			done := a.rec.Track("components")
			comps := connectivity.Components(g)
			a.observe(cmd, "components", done, nil, false)

			p := a.printer(cmd.OutOrStdout())
			p.Heading("%d component(s)", len(comps))
			for i, c := range comps {
				p.Line("%d: %s", i, join(c))
			}
			return nil
		},
	}
}

func (a *app) bipartiteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "bipartite",
		Short: "Two-colour the graph or report that it cannot be done",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := a.graph(cmd)
			if err != nil {
				return err
			}

			done := a.rec.Track("bipartite")
			colors, ok := connectivity.TwoColoring(g)
			a.observe(cmd, "bipartite", done, nil, false)

			p := a.printer(cmd.OutOrStdout())
			if !ok {
				p.Heading("bipartite: no")
				return nil
			}
			p.Heading("bipartite: yes")
			var left, right []string
			for _, v := range g.Vertices() {
				if colors[v] == connectivity.ColorA {
					left = append(left, v)
				} else {
					right = append(right, v)
				}
			}
			p.Line("A: %s", join(left))
			p.Line("B: %s", join(right))
			return nil
		},
	}
}

func (a *app) cycleCommand() *cobra.Command {
	var undirected bool
	cmd := &cobra.Command{
		Use:   "cycle",
		Short: "Find a cycle, honouring edge direction unless --undirected is set",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := a.graph(cmd)
			if err != nil {
				return err
			}
			directed := g.HasDirectedEdges() && !undirected

			done := a.rec.Track("cycle")
			cycle, found := connectivity.FindCycle(g, directed)
			a.observe(cmd, "cycle", done, nil, false)

			p := a.printer(cmd.OutOrStdout())
			if !found {
				p.Heading("no cycle")
				return nil
			}
			p.Heading("cycle: %s", join(cycle))
			return nil
		},
	}
	cmd.Flags().BoolVar(&undirected, "undirected", false, "ignore edge direction")
	return cmd
}

func (a *app) topoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "topo",
		Short: "Topological order of a directed acyclic graph",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := a.graph(cmd)
			if err != nil {
				return err
			}
			ctx, cancel := a.runContext(cmd)
			defer cancel()

			done := a.rec.Track("topo")
			order, err := dfs.TopologicalSort(g, dfs.WithContext(ctx))
			a.observe(cmd, "topo", done, err, false)
			if err != nil {
				return err
			}

			a.printer(cmd.OutOrStdout()).Heading("order: %s", join(order))
			return nil
		},
	}
}
