// Package lloyd partitions points into k clusters with Lloyd's algorithm
// (k-means).
//
// # Quick Start
//
//	data := model.NewDataset(
//	    []float64{0, 0}, []float64{0, 1},
//	    []float64{10, 10}, []float64{10, 11},
//	)
//	res, err := lloyd.Refine(data, 2, 100)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.Centroids, res.Assignments, res.Iterations)
//
// # Algorithm
//
// The centroids start as the first k points (see WithInitializer for other
// strategies). Each iteration assigns every point to its nearest centroid
// under the Euclidean metric, ties going to the lowest cluster id, and then
// moves each centroid to the mean of its points. A centroid without points
// keeps its position and its id. The run converges when no centroid moved
// more than the tolerance (1e-6); otherwise it stops after maxIterations.
// Both outcomes return a usable Result; Result.Converged tells them apart.
//
// # Concurrency
//
// Iterations are sequential. Within an iteration the assignment and update
// steps can be spread over several goroutines with WithWorkers; partial sums
// are merged in a fixed order, so the Result is bitwise identical for every
// worker count. A resource.Controller shared through WithResourceController
// bounds the total number of workers across concurrent runs.
//
// # Errors
//
// Invalid input is rejected before the first iteration:
//
//   - ErrEmptyDataset
//   - *ErrInvalidClusterCount (matches ErrInvalidK)
//   - ErrInvalidIterationBudget
//   - *ErrDimensionMismatch / *ErrInvalidDimension
//   - ErrInvalidTolerance
//
// With a resource.Controller whose memory limit is smaller than the scratch
// space of one update step, Refine fails with
// *resource.ErrMemoryLimitExceeded instead of waiting.
package lloyd
