package lloyd

import (
	"errors"
	"fmt"

	"github.com/hupe1980/lloyd/distance"
	"github.com/hupe1980/lloyd/internal/kmeans"
)

var (
	// ErrEmptyDataset is returned when the input contains no points.
	ErrEmptyDataset = errors.New("dataset must not be empty")

	// ErrInvalidK is matched by every *ErrInvalidClusterCount.
	ErrInvalidK = errors.New("k must be in [1, len(dataset)]")

	// ErrInvalidIterationBudget is returned when maxIterations < 1.
	ErrInvalidIterationBudget = errors.New("maxIterations must be at least 1")

	// ErrInvalidTolerance is returned for a negative or NaN tolerance.
	ErrInvalidTolerance = errors.New("tolerance must be a non-negative number")
)

// ErrInvalidClusterCount indicates k <= 0 or k > len(dataset).
//
// errors.Is(err, ErrInvalidK) reports true for this error.
type ErrInvalidClusterCount struct {
	K int
	N int
}

func (e *ErrInvalidClusterCount) Error() string {
	return fmt.Sprintf("invalid cluster count: k=%d, dataset has %d points", e.K, e.N)
}

// Is makes errors.Is(err, ErrInvalidK) succeed.
func (e *ErrInvalidClusterCount) Is(target error) bool { return target == ErrInvalidK }

// ErrDimensionMismatch indicates points of different dimensionality.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrDimensionMismatch struct {
	Expected int
	Actual   int
	// Index is the dataset index of the offending point, or -1 if unknown.
	Index int
	cause error
}

func (e *ErrDimensionMismatch) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("dimension mismatch at point %d: expected %d, got %d", e.Index, e.Expected, e.Actual)
	}
	return fmt.Sprintf("dimension mismatch: expected %d, got %d", e.Expected, e.Actual)
}

func (e *ErrDimensionMismatch) Unwrap() error { return e.cause }

// ErrInvalidDimension indicates points without coordinates.
type ErrInvalidDimension struct {
	Dimension int
}

func (e *ErrInvalidDimension) Error() string {
	return fmt.Sprintf("invalid dimension: %d", e.Dimension)
}

func translateError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, kmeans.ErrEmptyDataset) {
		return fmt.Errorf("%w: %w", ErrEmptyDataset, err)
	}

	var icc *kmeans.ErrInvalidClusterCount
	if errors.As(err, &icc) {
		return &ErrInvalidClusterCount{K: icc.K, N: icc.N}
	}

	var dm *distance.ErrDimensionMismatch
	if errors.As(err, &dm) {
		return &ErrDimensionMismatch{Expected: dm.Expected, Actual: dm.Actual, Index: -1, cause: err}
	}

	return err
}
