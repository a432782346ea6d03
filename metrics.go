package lloyd

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems; the
// metrics/prometheus package provides a Prometheus implementation.
type MetricsCollector interface {
	// RecordIteration is called after each completed iteration.
	// changes is the number of points that switched cluster and shift the
	// largest centroid movement.
	RecordIteration(changes int, shift float64, duration time.Duration)

	// RecordRefine is called once per Refine call.
	// err is nil if successful; converged is false when the iteration
	// limit was reached.
	RecordRefine(iterations int, converged bool, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordIteration(int, float64, time.Duration)  {}
func (NoopMetricsCollector) RecordRefine(int, bool, time.Duration, error) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	IterationCount      atomic.Int64
	IterationChanges    atomic.Int64
	IterationTotalNanos atomic.Int64
	RefineCount         atomic.Int64
	RefineErrors        atomic.Int64
	RefineConverged     atomic.Int64
	RefineTotalNanos    atomic.Int64
}

// RecordIteration implements MetricsCollector.
func (b *BasicMetricsCollector) RecordIteration(changes int, shift float64, duration time.Duration) {
	b.IterationCount.Add(1)
	b.IterationChanges.Add(int64(changes))
	b.IterationTotalNanos.Add(duration.Nanoseconds())
}

// RecordRefine implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRefine(iterations int, converged bool, duration time.Duration, err error) {
	b.RefineCount.Add(1)
	b.RefineTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.RefineErrors.Add(1)
		return
	}
	if converged {
		b.RefineConverged.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		IterationCount:    b.IterationCount.Load(),
		IterationChanges:  b.IterationChanges.Load(),
		IterationAvgNanos: avg(b.IterationTotalNanos.Load(), b.IterationCount.Load()),
		RefineCount:       b.RefineCount.Load(),
		RefineErrors:      b.RefineErrors.Load(),
		RefineConverged:   b.RefineConverged.Load(),
		RefineAvgNanos:    avg(b.RefineTotalNanos.Load(), b.RefineCount.Load()),
	}
}

func avg(total, count int64) int64 {
	if count == 0 {
		return 0
	}
	return total / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	IterationCount    int64
	IterationChanges  int64
	IterationAvgNanos int64
	RefineCount       int64
	RefineErrors      int64
	RefineConverged   int64
	RefineAvgNanos    int64
}
