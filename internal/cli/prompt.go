package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/graphlab/bfs"
	"github.com/katalvlaran/graphlab/connectivity"
	"github.com/katalvlaran/graphlab/core"
	"github.com/katalvlaran/graphlab/dfs"
	"github.com/katalvlaran/graphlab/shortest"
)

// ErrPromptInput reports malformed interactive input.
var ErrPromptInput = errors.New("cli: bad prompt input")

// lineReader yields trimmed non-blank lines.
type lineReader struct {
	sc   *bufio.Scanner
	line int
}

func (r *lineReader) next() ([]string, error) {
	for r.sc.Scan() {
		r.line++
		if fields := strings.Fields(r.sc.Text()); len(fields) > 0 {
			return fields, nil
		}
	}
	if err := r.sc.Err(); err != nil {
		return nil, err
	}
	return nil, fmt.Errorf("%w: unexpected end of input after line %d", ErrPromptInput, r.line)
}

func (r *lineReader) ints(fields []string) ([]int64, error) {
	out := make([]int64, len(fields))
	for i, f := range fields {
		n, err := strconv.ParseInt(f, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %q is not an integer", ErrPromptInput, r.line, f)
		}
		out[i] = n
	}
	return out, nil
}

// readPromptGraph reads "<edge count>", then one "u v [w]" line per edge,
// then the start vertex.
func readPromptGraph(in io.Reader, hint io.Writer, directed bool) (*core.Graph[int], int, error) {
	r := &lineReader{sc: bufio.NewScanner(in)}

	fmt.Fprint(hint, "number of edges: ")
	fields, err := r.next()
	if err != nil {
		return nil, 0, err
	}
	count, err := r.ints(fields[:1])
	if err != nil {
		return nil, 0, err
	}
	if count[0] < 0 {
		return nil, 0, fmt.Errorf("%w: negative edge count %d", ErrPromptInput, count[0])
	}

	g := core.NewGraph[int](core.WithDirected(directed))
	for i := int64(0); i < count[0]; i++ {
		fmt.Fprintf(hint, "edge %d (u v [w]): ", i+1)
		fields, err := r.next()
		if err != nil {
			return nil, 0, err
		}
		if len(fields) < 2 || len(fields) > 3 {
			return nil, 0, fmt.Errorf("%w: line %d: want \"u v [w]\", got %d field(s)", ErrPromptInput, r.line, len(fields))
		}
		nums, err := r.ints(fields)
		if err != nil {
			return nil, 0, err
		}
		w := core.DefaultWeight
		if len(nums) == 3 {
			w = nums[2]
		}
		g.AddEdge(int(nums[0]), int(nums[1]), core.WithWeight(w))
	}

	fmt.Fprint(hint, "start vertex: ")
	fields, err = r.next()
	if err != nil {
		return nil, 0, err
	}
	start, err := r.ints(fields[:1])
	if err != nil {
		return nil, 0, err
	}
	fmt.Fprintln(hint)

	return g, int(start[0]), nil
}

func (a *app) promptCommand() *cobra.Command {
	var directed bool
	cmd := &cobra.Command{
		Use:   "prompt",
		Short: "Type an integer graph on stdin and run every analysis on it",
		Long: `prompt reads, one item per line:
  the number of edges
  each edge as "u v" or "u v w" (w defaults to 1)
  the start vertex
and prints BFS, DFS, components, bipartiteness, cycle status and
Bellman-Ford distances. The --file flag is ignored.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, start, err := readPromptGraph(cmd.InOrStdin(), cmd.ErrOrStderr(), directed)
			if err != nil {
				return err
			}
			a.rec.ObserveGraph(g.VertexCount(), g.EdgeCount())
			ctx, cancel := a.runContext(cmd)
			defer cancel()

			p := a.printer(cmd.OutOrStdout())

			done := a.rec.Track("bfs")
			br, err := bfs.BFS(g, start, bfs.WithContext(ctx))
			a.observe(cmd, "bfs", done, err, false)
			if err != nil {
				return err
			}
			p.Heading("BFS")
			p.Line("%s", join(br.Order))

			done = a.rec.Track("dfs")
			dr, err := dfs.DFS(g, start, dfs.WithContext(ctx))
			a.observe(cmd, "dfs", done, err, false)
			if err != nil {
				return err
			}
			p.Heading("DFS")
			p.Line("%s", join(dr.Order))

			p.Heading("Components")
			p.Line("%d", connectivity.CountComponents(g))

			p.Heading("Bipartite")
			p.Line("%t", connectivity.IsBipartite(g))

			p.Heading("Cycle")
			p.Line("%t", connectivity.HasCycle(g, directed))

			done = a.rec.Track("bellman-ford")
			sr, err := shortest.BellmanFord(g, start, shortest.WithContext(ctx))
			negative := sr != nil && sr.NegativeCycle
			a.observe(cmd, "bellman-ford", done, err, negative)
			if err != nil {
				return err
			}
			p.Heading("Bellman-Ford")
			if negative {
				p.Warn("negative cycle reachable from %d", start)
			}
			vertices := g.Vertices()
			if !g.HasVertex(start) {
				vertices = append(vertices, start)
			}
			dists := make([]string, len(vertices))
			for i, v := range vertices {
				dists[i] = fmt.Sprintf("%d:%s", v, formatDist(sr.Dist[v]))
			}
			p.Line("%s", strings.Join(dists, " "))
			return nil
		},
	}
	cmd.Flags().BoolVar(&directed, "directed", false, "treat typed edges as directed")
	return cmd
}
