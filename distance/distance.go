package distance

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/hupe1980/lloyd/model"
)

// ErrDimensionMismatch is returned when two points have different dimensionality.
type ErrDimensionMismatch struct {
	Expected int
	Actual   int
}

func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("dimension mismatch: expected %d, got %d", e.Expected, e.Actual)
}

// Euclidean returns the L2 distance between a and b.
func Euclidean(a, b model.Point) (float64, error) {
	if len(a) != len(b) {
		return 0, &ErrDimensionMismatch{Expected: len(a), Actual: len(b)}
	}
	return floats.Distance(a, b, 2), nil
}

// SquaredEuclidean returns the squared L2 distance between a and b.
func SquaredEuclidean(a, b model.Point) (float64, error) {
	if len(a) != len(b) {
		return 0, &ErrDimensionMismatch{Expected: len(a), Actual: len(b)}
	}
	return squaredL2(a, b), nil
}

// squaredL2 assumes equal lengths (caller's responsibility).
func squaredL2(a, b []float64) float64 {
	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return sum
}
