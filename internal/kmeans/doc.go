// Package kmeans implements the steps of Lloyd's algorithm.
//
// Each step is a pure function over immutable snapshots:
//
//   - Initializer: produces the initial centroid set (FirstK, RandomSeeded, PlusPlus)
//   - Assign: nearest-centroid assignment for every point
//   - Update: per-cluster coordinate means; empty clusters keep their centroid
//   - Converged: every centroid moved at most the tolerance
//
// Step threads a State through one Assign/Update/Converged cycle and returns
// the next State without mutating its input. Assign and Update split the
// dataset into fixed-size chunks that may be evaluated concurrently; partial
// sums are merged in chunk order, so results do not depend on the worker count.
package kmeans
