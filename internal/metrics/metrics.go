// Package metrics records algorithm runs on a private Prometheus registry
// and renders them in the text exposition format.
package metrics

import (
	"fmt"
	"io"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/common/expfmt"
)

// Outcome labels.
const (
	OutcomeOK            = "ok"
	OutcomeError         = "error"
	OutcomeNegativeCycle = "negative_cycle"
)

// Recorder owns one registry and the collectors registered on it.
type Recorder struct {
	reg *prometheus.Registry

	runs     *prometheus.CounterVec
	duration *prometheus.HistogramVec
	vertices prometheus.Gauge
	edges    prometheus.Gauge
}

// New creates a Recorder with its own registry, so several recorders (one
// per test, one per CLI invocation) never collide.
func New() *Recorder {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Recorder{
		reg: reg,
		runs: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "graphlab_runs_total",
			Help: "Algorithm runs, labelled by algorithm and outcome.",
		}, []string{"algorithm", "outcome"}),
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "graphlab_run_duration_ms",
			Help:    "Algorithm run latency in milliseconds.",
			Buckets: []float64{0.1, 0.5, 1, 5, 10, 50, 100, 500, 1000, 5000},
		}, []string{"algorithm"}),
		vertices: factory.NewGauge(prometheus.GaugeOpts{
			Name: "graphlab_graph_vertices",
			Help: "Vertex count of the last loaded graph.",
		}),
		edges: factory.NewGauge(prometheus.GaugeOpts{
			Name: "graphlab_graph_edges",
			Help: "Edge count of the last loaded graph.",
		}),
	}
}

// ObserveGraph records the size of the graph about to be analysed.
func (r *Recorder) ObserveGraph(vertices, edges int) {
	r.vertices.Set(float64(vertices))
	r.edges.Set(float64(edges))
}

// ObserveRun counts one run of algorithm and records how long it took.
func (r *Recorder) ObserveRun(algorithm, outcome string, elapsed time.Duration) {
	r.runs.WithLabelValues(algorithm, outcome).Inc()
	r.duration.WithLabelValues(algorithm).Observe(float64(elapsed) / float64(time.Millisecond))
}

// Track starts a timer for algorithm; the returned func records the run
// with the given outcome.
func (r *Recorder) Track(algorithm string) func(outcome string) {
	start := time.Now()
	return func(outcome string) {
		r.ObserveRun(algorithm, outcome, time.Since(start))
	}
}

// WriteText writes every collected family to w in the Prometheus text
// format.
func (r *Recorder) WriteText(w io.Writer) error {
	families, err := r.reg.Gather()
	if err != nil {
		return fmt.Errorf("metrics: gather: %w", err)
	}
	enc := expfmt.NewEncoder(w, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, mf := range families {
		if err := enc.Encode(mf); err != nil {
			return fmt.Errorf("metrics: encode %s: %w", mf.GetName(), err)
		}
	}
	return nil
}
