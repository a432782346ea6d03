package kmeans

import (
	"context"

	"gonum.org/v1/gonum/floats"

	"github.com/hupe1980/lloyd/distance"
	"github.com/hupe1980/lloyd/model"
)

// Update recomputes every centroid as the mean of the points assigned to it.
// A cluster with no points keeps its previous centroid. It returns the new
// centroid set and the number of points per cluster.
func Update(ctx context.Context, data model.Dataset, assignments []int, previous []model.Point, ex Exec) ([]model.Point, []int, error) {
	k := len(previous)
	if k == 0 {
		return nil, nil, ErrNoCentroids
	}
	if len(assignments) != len(data) {
		return nil, nil, &ErrLengthMismatch{What: "assignment", Expected: len(data), Actual: len(assignments)}
	}

	dim := len(previous[0])
	for _, c := range previous[1:] {
		if len(c) != dim {
			return nil, nil, &distance.ErrDimensionMismatch{Expected: dim, Actual: len(c)}
		}
	}

	chunks := numChunks(len(data))
	scratch := int64(chunks) * int64(k*dim+k) * 8
	if err := ex.Resources.AcquireMemory(ctx, scratch); err != nil {
		return nil, nil, err
	}
	defer ex.Resources.ReleaseMemory(scratch)

	sums := make([][]float64, chunks)
	counts := make([][]int, chunks)

	err := forEachChunk(ctx, len(data), ex, func(c, lo, hi int) error {
		s := make([]float64, k*dim)
		n := make([]int, k)
		for i := lo; i < hi; i++ {
			cluster := assignments[i]
			if cluster < 0 || cluster >= k {
				return &ErrInvalidAssignment{Index: i, Cluster: cluster, K: k}
			}
			p := data[i]
			if len(p) != dim {
				return &distance.ErrDimensionMismatch{Expected: dim, Actual: len(p)}
			}
			floats.Add(s[cluster*dim:(cluster+1)*dim], p)
			n[cluster]++
		}
		sums[c] = s
		counts[c] = n
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	// Merge in chunk order.
	total := make([]float64, k*dim)
	sizes := make([]int, k)
	for c := range chunks {
		floats.Add(total, sums[c])
		for j, n := range counts[c] {
			sizes[j] += n
		}
	}

	next := make([]model.Point, k)
	for j := range k {
		if sizes[j] == 0 {
			next[j] = previous[j].Clone()
			continue
		}
		mean := model.Point(total[j*dim : (j+1)*dim : (j+1)*dim])
		n := float64(sizes[j])
		for d := range mean {
			mean[d] /= n
		}
		next[j] = mean
	}

	return next, sizes, nil
}

// Inertia returns the within-cluster sum of squared distances.
func Inertia(data model.Dataset, centroids []model.Point, assignments []int) (float64, error) {
	if len(assignments) != len(data) {
		return 0, &ErrLengthMismatch{What: "assignment", Expected: len(data), Actual: len(assignments)}
	}

	var sum float64
	for i, p := range data {
		cluster := assignments[i]
		if cluster < 0 || cluster >= len(centroids) {
			return 0, &ErrInvalidAssignment{Index: i, Cluster: cluster, K: len(centroids)}
		}
		d, err := distance.SquaredEuclidean(p, centroids[cluster])
		if err != nil {
			return 0, err
		}
		sum += d
	}
	return sum, nil
}
