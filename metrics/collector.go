package metrics

import (
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/mcda/promethee"
)

const namespace = "mcda"

// ErrNilRegisterer indicates NewCollector was called without a registerer.
var ErrNilRegisterer = errors.New("metrics: nil registerer")

var _ promethee.Recorder = (*Collector)(nil)

// Collector records Prioritize runs and weight updates.
//
//   - mcda_prioritize_total{outcome}: runs by outcome.
//   - mcda_prioritize_duration_seconds: wall time of every run.
//   - mcda_prioritize_alternatives, mcda_prioritize_criteria: sizes of the last run.
//   - mcda_weight_updates_total{outcome}: UpdateWeights/SetWeight calls by outcome.
type Collector struct {
	runs         *prometheus.CounterVec
	duration     prometheus.Histogram
	alternatives prometheus.Gauge
	criteria     prometheus.Gauge
	updates      *prometheus.CounterVec
}

// NewCollector creates the collectors and registers them on reg.
// Registration stops at the first failure (for example a second Collector
// on the same registry) and the error is returned.
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	if reg == nil {
		return nil, ErrNilRegisterer
	}
	c := &Collector{
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "prioritize_total",
			Help:      "Prioritize calls by outcome.",
		}, []string{"outcome"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "prioritize_duration_seconds",
			Help:      "Wall time of Prioritize calls.",
			Buckets:   prometheus.ExponentialBuckets(1e-5, 4, 10),
		}),
		alternatives: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "prioritize_alternatives",
			Help:      "Number of alternatives in the last Prioritize call.",
		}),
		criteria: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "prioritize_criteria",
			Help:      "Number of criteria in the last Prioritize call.",
		}),
		updates: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "weight_updates_total",
			Help:      "Weight update calls by outcome.",
		}, []string{"outcome"}),
	}

	for _, col := range []prometheus.Collector{c.runs, c.duration, c.alternatives, c.criteria, c.updates} {
		if err := reg.Register(col); err != nil {
			return nil, fmt.Errorf("metrics: register: %w", err)
		}
	}

	return c, nil
}

// ObservePrioritize implements promethee.Recorder.
func (c *Collector) ObservePrioritize(outcome string, elapsed time.Duration, alternatives, criteria int) {
	c.runs.WithLabelValues(outcome).Inc()
	c.duration.Observe(elapsed.Seconds())
	c.alternatives.Set(float64(alternatives))
	c.criteria.Set(float64(criteria))
}

// ObserveWeightUpdate implements promethee.Recorder.
func (c *Collector) ObserveWeightUpdate(outcome string) {
	c.updates.WithLabelValues(outcome).Inc()
}
