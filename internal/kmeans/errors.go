package kmeans

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyDataset is returned when there are no points to cluster.
	ErrEmptyDataset = errors.New("empty dataset")

	// ErrNoCentroids is returned when a step is given an empty centroid set.
	ErrNoCentroids = errors.New("no centroids")

	// ErrNotIterating is returned when Step is called on a terminal state.
	ErrNotIterating = errors.New("state is not iterating")
)

// ErrInvalidClusterCount indicates k is outside [1, n].
type ErrInvalidClusterCount struct {
	K int
	N int
}

func (e *ErrInvalidClusterCount) Error() string {
	return fmt.Sprintf("invalid cluster count: k=%d, n=%d", e.K, e.N)
}

// ErrInvalidAssignment indicates an assignment vector that does not fit the
// dataset or centroid set.
type ErrInvalidAssignment struct {
	Index   int
	Cluster int
	K       int
}

func (e *ErrInvalidAssignment) Error() string {
	return fmt.Sprintf("invalid assignment: point %d assigned to cluster %d (k=%d)", e.Index, e.Cluster, e.K)
}

// ErrLengthMismatch indicates two sequences that must have equal length do not.
type ErrLengthMismatch struct {
	What     string
	Expected int
	Actual   int
}

func (e *ErrLengthMismatch) Error() string {
	return fmt.Sprintf("%s length mismatch: expected %d, got %d", e.What, e.Expected, e.Actual)
}

func checkClusterCount(n, k int) error {
	if n == 0 {
		return ErrEmptyDataset
	}
	if k <= 0 || k > n {
		return &ErrInvalidClusterCount{K: k, N: n}
	}
	return nil
}
