package lloyd

import (
	"log/slog"

	"github.com/hupe1980/lloyd/internal/kmeans"
	"github.com/hupe1980/lloyd/resource"
)

type options struct {
	initializer      Initializer
	tolerance        float64
	workers          int
	resources        *resource.Controller
	metricsCollector MetricsCollector
	logger           *Logger
	trace            bool
}

func defaultOptions() options {
	return options{
		initializer:      kmeans.FirstK{},
		tolerance:        kmeans.DefaultTolerance,
		workers:          1,
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
}

// Option configures a Clusterer.
type Option func(*options)

// WithInitializer selects the strategy that produces the initial centroids.
//
// If nil is passed, FirstK is used. FirstK is the only built-in strategy that
// does not depend on a seed; every strategy is deterministic for a fixed seed.
func WithInitializer(init Initializer) Option {
	return func(o *options) {
		if init == nil {
			init = kmeans.FirstK{}
		}
		o.initializer = init
	}
}

// WithTolerance sets the largest centroid movement considered stable.
// The default is 1e-6.
func WithTolerance(tol float64) Option {
	return func(o *options) {
		o.tolerance = tol
	}
}

// WithWorkers sets how many goroutines evaluate the assignment and update
// steps of one iteration. Results are identical for every value.
//
// If workers <= 1, steps run on the calling goroutine (default).
func WithWorkers(workers int) Option {
	return func(o *options) {
		o.workers = workers
	}
}

// WithResourceController shares worker slots and scratch memory limits
// between concurrent runs.
//
// Example:
//
//	rc := resource.NewController(resource.Config{MaxWorkers: 8})
//	c := lloyd.New(lloyd.WithWorkers(4), lloyd.WithResourceController(rc))
func WithResourceController(rc *resource.Controller) Option {
	return func(o *options) {
		o.resources = rc
	}
}

// WithMetricsCollector configures a metrics collector for monitoring runs.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &lloyd.BasicMetricsCollector{}
//	c := lloyd.New(lloyd.WithMetricsCollector(metrics))
//	// ... use c ...
//	stats := metrics.GetStats()
//	fmt.Printf("Runs: %d, Converged: %d\n", stats.RefineCount, stats.RefineConverged)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for runs.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := lloyd.NewJSONLogger(slog.LevelInfo)
//	c := lloyd.New(lloyd.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

// WithTrace records per-iteration statistics in Result.Trace.
// Tracing computes the inertia after every iteration, one extra pass over
// the dataset per iteration.
func WithTrace(enabled bool) Option {
	return func(o *options) {
		o.trace = enabled
	}
}
