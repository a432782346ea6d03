package testutil

import (
	"math/rand"
	"sync"

	"github.com/hupe1980/lloyd/model"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// UniformPoints generates points with coordinates in [0, 1).
func (r *RNG) UniformPoints(num, dim int) model.Dataset {
	r.mu.Lock()
	defer r.mu.Unlock()

	data := make([]float64, num*dim)
	points := make(model.Dataset, num)

	for i := range num {
		p := data[i*dim : (i+1)*dim : (i+1)*dim]
		for j := range p {
			p[j] = r.rand.Float64()
		}
		points[i] = p
	}

	return points
}

// GaussianPoints generates points with standard normal coordinates.
func (r *RNG) GaussianPoints(num, dim int) model.Dataset {
	r.mu.Lock()
	defer r.mu.Unlock()

	data := make([]float64, num*dim)
	points := make(model.Dataset, num)

	for i := range num {
		p := data[i*dim : (i+1)*dim : (i+1)*dim]
		for j := range p {
			p[j] = r.rand.NormFloat64()
		}
		points[i] = p
	}

	return points
}

// Blobs generates perCluster points around each center with Gaussian noise
// of the given spread. Points are interleaved (center 0, 1, ..., 0, 1, ...)
// and labels[i] is the index of the center point i was drawn around.
func (r *RNG) Blobs(centers []model.Point, perCluster int, spread float64) (model.Dataset, []int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	num := len(centers) * perCluster
	points := make(model.Dataset, 0, num)
	labels := make([]int, 0, num)

	for range perCluster {
		for c, center := range centers {
			p := make(model.Point, len(center))
			for j := range p {
				p[j] = center[j] + r.rand.NormFloat64()*spread
			}
			points = append(points, p)
			labels = append(labels, c)
		}
	}

	return points, labels
}

// SampleDataset returns nine 2D points forming three well separated groups,
// labelled 0, 1 and 2.
func SampleDataset() (model.Dataset, []int) {
	data := model.NewDataset(
		[]float64{1.0, 1.0}, []float64{1.5, 2.0}, []float64{3.0, 4.0},
		[]float64{10.0, 10.0}, []float64{9.5, 9.8}, []float64{10.5, 11.0},
		[]float64{20.0, 5.0}, []float64{21.0, 4.0}, []float64{20.5, 6.0},
	)
	return data, []int{0, 0, 0, 1, 1, 1, 2, 2, 2}
}

// SamePartition reports whether labels and assignments describe the same
// grouping up to a renaming of cluster ids.
func SamePartition(labels, assignments []int) bool {
	if len(labels) != len(assignments) {
		return false
	}

	forward := make(map[int]int)
	backward := make(map[int]int)
	for i := range labels {
		l, a := labels[i], assignments[i]
		if v, ok := forward[l]; ok && v != a {
			return false
		}
		if v, ok := backward[a]; ok && v != l {
			return false
		}
		forward[l] = a
		backward[a] = l
	}

	return true
}
