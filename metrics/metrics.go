package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/gridnav/replan"
)

// Outcome labels shared by every algorithm.
const (
	OutcomeFound    = "found"
	OutcomeNotFound = "not_found"
	OutcomeAborted  = "aborted" // a hook stopped the run
)

// Recorder holds the gridnav collectors and the registry they live in.
type Recorder struct {
	reg *prometheus.Registry

	// searches counts finished searches by algorithm and outcome
	searches *prometheus.CounterVec
	// expanded tracks frontier pops per search
	expanded *prometheus.HistogramVec
	// duration tracks wall time per search
	duration *prometheus.HistogramVec
	// steps counts replanner decisions by kind
	steps *prometheus.CounterVec
}

// New returns a Recorder registered on a fresh registry.
func New() *Recorder {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Recorder{
		reg: reg,
		searches: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "gridnav_search_total",
			Help: "Total searches by algorithm and outcome",
		}, []string{"algorithm", "outcome"}),
		expanded: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "gridnav_search_expanded_nodes",
			Help:    "Nodes expanded per search",
			Buckets: prometheus.ExponentialBuckets(1, 4, 10), // 1 to ~260k
		}, []string{"algorithm"}),
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "gridnav_search_duration_seconds",
			Help:    "Search duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.00001, 4, 10), // 10µs to ~2.6s
		}, []string{"algorithm"}),
		steps: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "gridnav_replan_steps_total",
			Help: "Total replanner decisions by kind",
		}, []string{"kind"}),
	}
}

// Outcome maps a static search result to its outcome label.
func Outcome(found bool) string {
	if found {
		return OutcomeFound
	}
	return OutcomeNotFound
}

// ReplanOutcome maps a replanning outcome onto the shared labels:
// Reached is found, GaveUp is not_found.
func ReplanOutcome(o replan.Outcome) string {
	switch o {
	case replan.Reached:
		return OutcomeFound
	case replan.GaveUp:
		return OutcomeNotFound
	default:
		return OutcomeAborted
	}
}

// ObserveSearch records one finished search.
func (r *Recorder) ObserveSearch(algorithm, outcome string, expanded int, elapsed time.Duration) {
	r.searches.WithLabelValues(algorithm, outcome).Inc()
	r.expanded.WithLabelValues(algorithm).Observe(float64(expanded))
	r.duration.WithLabelValues(algorithm).Observe(elapsed.Seconds())
}

// ObserveSteps counts every decision of a replanning run.
func (r *Recorder) ObserveSteps(steps []replan.Step) {
	for _, s := range steps {
		r.steps.WithLabelValues(s.Kind.String()).Inc()
	}
}

// Registry exposes the underlying registry, e.g. for promhttp.
func (r *Recorder) Registry() *prometheus.Registry { return r.reg }

// WriteTextfile writes every metric to path in the text exposition format.
// The file is written atomically.
func (r *Recorder) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, r.reg)
}
