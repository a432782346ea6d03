// Package prometheus exports refinement metrics to Prometheus.
//
//	c := prometheus.NewCollector("lloyd")
//	if err := c.Register(prom.DefaultRegisterer); err != nil { ... }
//	clusterer := lloyd.New(lloyd.WithMetricsCollector(c))
package prometheus

import (
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
)

// Outcome label values of the refines counter.
const (
	OutcomeConverged = "converged"
	OutcomeLimit     = "iteration_limit"
	OutcomeError     = "error"
)

// Collector implements lloyd.MetricsCollector on top of Prometheus metrics.
type Collector struct {
	Refines           *prom.CounterVec
	Iterations        prom.Counter
	Changes           prom.Counter
	Shift             prom.Gauge
	IterationDuration prom.Histogram
	RefineDuration    prom.Histogram
}

// NewCollector creates unregistered metrics under namespace.
func NewCollector(namespace string) *Collector {
	return &Collector{
		Refines: prom.NewCounterVec(
			prom.CounterOpts{
				Namespace: namespace,
				Name:      "refines_total",
				Help:      "Refinement runs by outcome.",
			}, []string{"outcome"}),
		Iterations: prom.NewCounter(prom.CounterOpts{
			Namespace: namespace,
			Name:      "iterations_total",
			Help:      "Completed iterations.",
		}),
		Changes: prom.NewCounter(prom.CounterOpts{
			Namespace: namespace,
			Name:      "assignment_changes_total",
			Help:      "Points that switched cluster.",
		}),
		Shift: prom.NewGauge(prom.GaugeOpts{
			Namespace: namespace,
			Name:      "last_centroid_shift",
			Help:      "Largest centroid movement of the most recent iteration.",
		}),
		IterationDuration: prom.NewHistogram(prom.HistogramOpts{
			Namespace: namespace,
			Name:      "iteration_duration_seconds",
			Help:      "Duration of one iteration.",
			Buckets:   prom.ExponentialBuckets(1e-5, 4, 10),
		}),
		RefineDuration: prom.NewHistogram(prom.HistogramOpts{
			Namespace: namespace,
			Name:      "refine_duration_seconds",
			Help:      "Duration of one refinement run.",
			Buckets:   prom.DefBuckets,
		}),
	}
}

// Register registers every metric with r.
func (c *Collector) Register(r prom.Registerer) error {
	for _, m := range []prom.Collector{c.Refines, c.Iterations, c.Changes, c.Shift, c.IterationDuration, c.RefineDuration} {
		if err := r.Register(m); err != nil {
			return err
		}
	}
	return nil
}

// RecordIteration implements lloyd.MetricsCollector.
func (c *Collector) RecordIteration(changes int, shift float64, duration time.Duration) {
	c.Iterations.Inc()
	c.Changes.Add(float64(changes))
	c.Shift.Set(shift)
	c.IterationDuration.Observe(duration.Seconds())
}

// RecordRefine implements lloyd.MetricsCollector.
func (c *Collector) RecordRefine(iterations int, converged bool, duration time.Duration, err error) {
	outcome := OutcomeLimit
	switch {
	case err != nil:
		outcome = OutcomeError
	case converged:
		outcome = OutcomeConverged
	}
	c.Refines.WithLabelValues(outcome).Inc()
	c.RefineDuration.Observe(duration.Seconds())
}
