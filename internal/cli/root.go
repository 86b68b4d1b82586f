// Package cli wires the graph algorithms to a cobra command tree. Every
// subcommand reads one graph document (YAML, see internal/config), runs a
// single algorithm under the document's limits and prints the result.
package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/graphlab/core"
	"github.com/katalvlaran/graphlab/internal/config"
	"github.com/katalvlaran/graphlab/internal/ctxlog"
	"github.com/katalvlaran/graphlab/internal/metrics"
)

// app holds the global flags and the per-invocation state shared by
// subcommands.
type app struct {
	file     string
	logLevel string
	metrics  bool
	noColor  bool

	rec *metrics.Recorder
	doc *config.Document
}

// NewRootCommand builds a fresh command tree. Each call has its own flag
// state, so tests may build and run as many as they like.
func NewRootCommand() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "graphlab",
		Short: "graphlab - run graph algorithms on a YAML graph document",
		Long: `graphlab loads a graph document and runs one algorithm on it.

Examples:
  # breadth-first order from vertex a
  graphlab bfs -f graph.yaml --start a

  # single-source distances, negative edges allowed
  graphlab bellman-ford -f graph.yaml --source a

  # read the document from stdin and dump metrics afterwards
  cat graph.yaml | graphlab components --metrics

  # type a small integer graph by hand
  graphlab prompt`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			if !a.metrics {
				return nil
			}
			return a.rec.WriteText(cmd.OutOrStdout())
		},
	}

	root.PersistentFlags().StringVarP(&a.file, "file", "f", config.Stdin, "graph document (YAML), - for stdin")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "warn", "log level: debug, info, warn, error")
	root.PersistentFlags().BoolVar(&a.metrics, "metrics", false, "print Prometheus metrics after the run")
	root.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "disable coloured output")

	root.AddCommand(
		a.bfsCommand(),
		a.dfsCommand(),
		a.componentsCommand(),
		a.bipartiteCommand(),
		a.cycleCommand(),
		a.topoCommand(),
		a.bellmanFordCommand(),
		a.dijkstraCommand(),
		a.floydWarshallCommand(),
		a.floodFillCommand(),
		a.generateCommand(),
		a.promptCommand(),
	)

	return root
}

// Execute runs the command tree against os.Args.
func Execute(ctx context.Context) error {
	return NewRootCommand().ExecuteContext(ctx)
}

// setup installs the logger and the metrics recorder before any subcommand
// runs.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	var level slog.Level
	if err := level.UnmarshalText([]byte(a.logLevel)); err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", a.logLevel, err)
	}
	handler := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = ctxlog.WithLogger(ctx, slog.New(handler))
	ctx = ctxlog.With(ctx, "run_id", uuid.NewString(), "command", cmd.Name())
	cmd.SetContext(ctx)

	a.rec = metrics.New()
	return nil
}

// document loads the graph document once per invocation.
func (a *app) document(cmd *cobra.Command) (*config.Document, error) {
	if a.doc != nil {
		return a.doc, nil
	}

	var (
		doc *config.Document
		err error
	)
	if a.file == config.Stdin {
		doc, err = config.Parse(cmd.InOrStdin())
		if err != nil {
			err = fmt.Errorf("parse config from stdin: %w", err)
		}
	} else {
		doc, err = config.Load(a.file)
	}
	if err != nil {
		return nil, err
	}

	a.doc = doc
	ctxlog.FromContext(cmd.Context()).Debug("document loaded",
		"file", a.file, "vertices", len(doc.Vertices), "edges", len(doc.Edges))
	return doc, nil
}

// graph loads the document and builds its graph.
func (a *app) graph(cmd *cobra.Command) (*core.Graph[string], error) {
	doc, err := a.document(cmd)
	if err != nil {
		return nil, err
	}
	g := doc.Build()
	a.rec.ObserveGraph(g.VertexCount(), g.EdgeCount())
	return g, nil
}

// runContext derives the context an algorithm runs under, applying the
// document's timeout when there is one.
func (a *app) runContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	ctx := cmd.Context()
	if a.doc != nil && a.doc.Limits.Timeout > 0 {
		return context.WithTimeout(ctx, a.doc.Limits.Timeout)
	}
	return context.WithCancel(ctx)
}

// stepBudget returns the document's relaxation budget (0 = unlimited).
func (a *app) stepBudget() int64 {
	if a.doc == nil {
		return 0
	}
	return a.doc.Limits.StepBudget
}

// observe records one run and logs its outcome.
func (a *app) observe(cmd *cobra.Command, algorithm string, done func(string), err error, negativeCycle bool) {
	outcome := metrics.OutcomeOK
	switch {
	case err != nil:
		outcome = metrics.OutcomeError
	case negativeCycle:
		outcome = metrics.OutcomeNegativeCycle
	}
	done(outcome)

	logger := ctxlog.FromContext(cmd.Context())
	if err != nil {
		logger.Error("run failed", "algorithm", algorithm, "err", err)
		return
	}
	logger.Info("run finished", "algorithm", algorithm, "outcome", outcome)
}
