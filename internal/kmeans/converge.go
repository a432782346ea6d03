package kmeans

import (
	"github.com/hupe1980/lloyd/distance"
	"github.com/hupe1980/lloyd/model"
)

// DefaultTolerance is the largest centroid movement considered stable.
const DefaultTolerance = 1e-6

// Converged reports whether every centroid moved at most tol between previous
// and next. It also returns the largest movement observed.
func Converged(previous, next []model.Point, tol float64) (bool, float64, error) {
	if len(previous) != len(next) {
		return false, 0, &ErrLengthMismatch{What: "centroid", Expected: len(previous), Actual: len(next)}
	}

	converged := true
	var maxShift float64
	for k := range previous {
		d, err := distance.Euclidean(previous[k], next[k])
		if err != nil {
			return false, 0, err
		}
		if !(d <= tol) {
			converged = false
		}
		if d > maxShift {
			maxShift = d
		}
	}
	return converged, maxShift, nil
}
