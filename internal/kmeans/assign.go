package kmeans

import (
	"context"

	"github.com/hupe1980/lloyd/distance"
	"github.com/hupe1980/lloyd/model"
)

// Unassigned marks a point that has not been through an assignment step.
const Unassigned = -1

// Assign returns, for every point, the index of its nearest centroid.
// Ties go to the lowest cluster id.
func Assign(ctx context.Context, data model.Dataset, centroids []model.Point, ex Exec) ([]int, error) {
	if len(centroids) == 0 {
		return nil, ErrNoCentroids
	}

	assignments := make([]int, len(data))

	err := forEachChunk(ctx, len(data), ex, func(_, lo, hi int) error {
		for i := lo; i < hi; i++ {
			best, _, err := Nearest(data[i], centroids)
			if err != nil {
				return err
			}
			assignments[i] = best
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return assignments, nil
}

// Nearest finds the closest centroid for p and returns its index and distance.
// centroids must not be empty.
func Nearest(p model.Point, centroids []model.Point) (int, float64, error) {
	if len(centroids) == 0 {
		return Unassigned, 0, ErrNoCentroids
	}

	minDist, err := distance.Euclidean(p, centroids[0])
	if err != nil {
		return Unassigned, 0, err
	}
	best := 0

	for k := 1; k < len(centroids); k++ {
		d, err := distance.Euclidean(p, centroids[k])
		if err != nil {
			return Unassigned, 0, err
		}
		if d < minDist {
			minDist = d
			best = k
		}
	}

	return best, minDist, nil
}

// Changes counts the points whose cluster differs between prev and next.
// Unassigned entries in prev always count as changed.
func Changes(prev, next []int) int {
	var n int
	for i := range next {
		if i >= len(prev) || prev[i] != next[i] {
			n++
		}
	}
	return n
}
