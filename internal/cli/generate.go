package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/graphlab/builder"
	"github.com/katalvlaran/graphlab/core"
	"github.com/katalvlaran/graphlab/internal/config"
)

func (a *app) generateCommand() *cobra.Command {
	var (
		kind       string
		n, m       int
		p          float64
		seed       int64
		minW, maxW int64
		directed   bool
	)
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a generated graph document to stdout",
		Long: `generate builds a fixture graph and prints it as a YAML document that
every other subcommand accepts.

Kinds:
  path, cycle, star, wheel, complete   --n vertices
  grid                                 --n rows, --m columns
  bipartite                            --n left, --m right
  random                               --n vertices, --p edge probability

Weights are drawn uniformly from [--min-weight, --max-weight] using --seed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if maxW < minW {
				return fmt.Errorf("--max-weight %d is below --min-weight %d", maxW, minW)
			}
			var con builder.Constructor
			switch kind {
			case "grid":
				con = builder.Grid(n, m)
			case "bipartite":
				con = builder.CompleteBipartite(n, m)
			case "random":
				con = builder.RandomSparse(n, p)
			default:
				var err error
				if con, err = builder.ByName(kind, n); err != nil {
					return err
				}
			}

			g, err := builder.BuildGraph(
				[]core.GraphOption{core.WithDirected(directed)},
				[]builder.BuilderOption{
					builder.WithSeed(seed),
					builder.WithWeightFn(builder.UniformWeightFn(minW, maxW)),
				},
				con,
			)
			if err != nil {
				return err
			}
			a.rec.ObserveGraph(g.VertexCount(), g.EdgeCount())
			return config.FromGraph(g).Write(cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVar(&kind, "kind", "path", "topology to generate")
	cmd.Flags().IntVar(&n, "n", 5, "primary size")
	cmd.Flags().IntVar(&m, "m", 0, "secondary size (grid columns, right side of bipartite)")
	cmd.Flags().Float64Var(&p, "p", 0.1, "edge probability for random graphs")
	cmd.Flags().Int64Var(&seed, "seed", 1, "random seed")
	cmd.Flags().Int64Var(&minW, "min-weight", 1, "smallest edge weight")
	cmd.Flags().Int64Var(&maxW, "max-weight", 1, "largest edge weight")
	cmd.Flags().BoolVar(&directed, "directed", false, "generate directed edges")
	return cmd
}
