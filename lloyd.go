package lloyd

import (
	"context"
	"math"
	"time"

	"github.com/hupe1980/lloyd/internal/kmeans"
	"github.com/hupe1980/lloyd/model"
)

// Clusterer runs Lloyd's algorithm with a fixed configuration.
// It holds no per-run state and is safe for concurrent use.
type Clusterer struct {
	opts options
}

// New creates a Clusterer. Without options it uses the FirstK initializer,
// a tolerance of 1e-6, sequential steps and no logging or metrics.
func New(optFns ...Option) *Clusterer {
	opts := defaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Clusterer{opts: opts}
}

// Refine partitions dataset into k clusters using the default configuration.
//
// Preconditions: dataset is non-empty and homogeneous, 1 <= k <= len(dataset)
// and maxIterations >= 1. Reaching maxIterations without convergence is not
// an error; see Result.Converged.
func Refine(dataset model.Dataset, k, maxIterations int) (*Result, error) {
	return New().Refine(context.Background(), dataset, k, maxIterations)
}

// Refine partitions dataset into k clusters.
//
// Each iteration assigns every point to its nearest centroid, recomputes the
// centroids as cluster means and stops once no centroid moved more than the
// tolerance. Iterations are counted from 1 and include the converging one.
// ctx is checked between iterations and while waiting for worker slots.
func (c *Clusterer) Refine(ctx context.Context, dataset model.Dataset, k, maxIterations int) (res *Result, err error) {
	start := time.Now()
	logger := c.opts.logger.forRun().WithK(k).WithCount(len(dataset)).WithDimension(dataset.Dim())

	var (
		iterations int
		converged  bool
	)
	defer func() {
		duration := time.Since(start)
		c.opts.metricsCollector.RecordRefine(iterations, converged, duration, err)
		logger.LogRefine(ctx, iterations, converged, duration, err)
	}()

	if err = c.validate(dataset, k, maxIterations); err != nil {
		return nil, err
	}

	state, err := kmeans.Start(dataset, k, c.opts.initializer)
	if err != nil {
		return nil, translateError(err)
	}

	cfg := kmeans.Config{
		MaxIterations: maxIterations,
		Tolerance:     c.opts.tolerance,
		Exec: kmeans.Exec{
			Workers:   c.opts.workers,
			Resources: c.opts.resources,
		},
	}

	var trace []IterationStats
	for !state.Phase.Terminal() {
		if err = ctx.Err(); err != nil {
			return nil, err
		}

		iterStart := time.Now()
		state, err = kmeans.Step(ctx, state, dataset, cfg)
		if err != nil {
			return nil, translateError(err)
		}
		iterations = state.Iteration

		c.opts.metricsCollector.RecordIteration(state.Changes, state.Shift, time.Since(iterStart))
		logger.LogIteration(ctx, state.Iteration, state.Changes, state.Shift)

		if c.opts.trace {
			inertia, ierr := kmeans.Inertia(dataset, state.Centroids, state.Assignments)
			if ierr != nil {
				err = translateError(ierr)
				return nil, err
			}
			trace = append(trace, IterationStats{
				Iteration: state.Iteration,
				Changes:   state.Changes,
				Shift:     state.Shift,
				Inertia:   inertia,
			})
		}
	}
	converged = state.Phase == kmeans.PhaseConverged

	inertia, err := kmeans.Inertia(dataset, state.Centroids, state.Assignments)
	if err != nil {
		return nil, translateError(err)
	}

	return &Result{
		Centroids:   state.Centroids,
		Assignments: state.Assignments,
		Iterations:  state.Iteration,
		Converged:   converged,
		Sizes:       state.Sizes,
		Inertia:     inertia,
		Trace:       trace,
	}, nil
}

func (c *Clusterer) validate(dataset model.Dataset, k, maxIterations int) error {
	if len(dataset) == 0 {
		return ErrEmptyDataset
	}
	if k <= 0 || k > len(dataset) {
		return &ErrInvalidClusterCount{K: k, N: len(dataset)}
	}
	if maxIterations < 1 {
		return ErrInvalidIterationBudget
	}
	if tol := c.opts.tolerance; tol < 0 || math.IsNaN(tol) {
		return ErrInvalidTolerance
	}

	dim := dataset.Dim()
	if dim == 0 {
		return &ErrInvalidDimension{Dimension: dim}
	}
	if i := dataset.CheckHomogeneous(); i >= 0 {
		return &ErrDimensionMismatch{Expected: dim, Actual: len(dataset[i]), Index: i}
	}

	return nil
}
