package kmeans

import (
	"math/rand/v2"

	"github.com/hupe1980/lloyd/distance"
	"github.com/hupe1980/lloyd/model"
)

// Initializer produces the initial centroid set for a run.
//
// Implementations must return exactly k points, must not return storage shared
// with data, and must reject k outside [1, len(data)].
type Initializer interface {
	Init(data model.Dataset, k int) ([]model.Point, error)
}

// FirstK selects the first k points of the dataset in order.
// It is deterministic and sensitive to input ordering.
type FirstK struct{}

// Init implements Initializer.
func (FirstK) Init(data model.Dataset, k int) ([]model.Point, error) {
	if err := checkClusterCount(len(data), k); err != nil {
		return nil, err
	}
	return model.ClonePoints(data[:k]), nil
}

// RandomSeeded selects k distinct points uniformly at random.
type RandomSeeded struct {
	Seed uint64
}

// Init implements Initializer.
func (r RandomSeeded) Init(data model.Dataset, k int) ([]model.Point, error) {
	if err := checkClusterCount(len(data), k); err != nil {
		return nil, err
	}

	rng := newRNG(r.Seed)
	perm := rng.Perm(len(data))

	centroids := make([]model.Point, k)
	for i := range k {
		centroids[i] = data[perm[i]].Clone()
	}
	return centroids, nil
}

// PlusPlus implements k-means++ seeding: the first center is uniform, each
// following center is sampled with probability proportional to its squared
// distance from the nearest chosen center.
type PlusPlus struct {
	Seed uint64
}

// Init implements Initializer.
func (p PlusPlus) Init(data model.Dataset, k int) ([]model.Point, error) {
	n := len(data)
	if err := checkClusterCount(n, k); err != nil {
		return nil, err
	}

	rng := newRNG(p.Seed)
	chosen := make([]bool, n)
	centroids := make([]model.Point, 0, k)

	first := rng.IntN(n)
	chosen[first] = true
	centroids = append(centroids, data[first].Clone())

	// weights[i] is the squared distance from point i to its nearest center.
	weights := make([]float64, n)
	for i := range data {
		d, err := distance.SquaredEuclidean(data[i], centroids[0])
		if err != nil {
			return nil, err
		}
		weights[i] = d
	}

	for len(centroids) < k {
		idx := weightedSample(weights, chosen, rng)
		chosen[idx] = true
		c := data[idx].Clone()
		centroids = append(centroids, c)

		for i := range data {
			d, err := distance.SquaredEuclidean(data[i], c)
			if err != nil {
				return nil, err
			}
			if d < weights[i] {
				weights[i] = d
			}
		}
	}

	return centroids, nil
}

// weightedSample draws an unchosen index with probability proportional to
// weights. When every unchosen weight is zero the draw is uniform.
func weightedSample(weights []float64, chosen []bool, rng *rand.Rand) int {
	var sum float64
	for i, w := range weights {
		if !chosen[i] {
			sum += w
		}
	}

	if sum > 0 {
		target := sum * rng.Float64()
		var acc float64
		last := -1
		for i, w := range weights {
			if chosen[i] || w == 0 {
				continue
			}
			acc += w
			last = i
			if target < acc {
				return i
			}
		}
		// Rounding left target at the very end of the range.
		return last
	}

	free := make([]int, 0, len(weights))
	for i := range weights {
		if !chosen[i] {
			free = append(free, i)
		}
	}
	return free[rng.IntN(len(free))]
}

func newRNG(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, 0x385ab5285169b1ac))
}
