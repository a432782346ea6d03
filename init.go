package lloyd

import "github.com/hupe1980/lloyd/internal/kmeans"

// Initializer produces the initial centroid set of a run.
//
// Implementations must return exactly k points that do not share storage
// with the dataset, and must reject k outside [1, len(data)].
type Initializer = kmeans.Initializer

// FirstK returns the default initializer, which selects the first k points
// in input order.
func FirstK() Initializer { return kmeans.FirstK{} }

// RandomSeeded returns an initializer that selects k distinct points
// uniformly at random using the given seed.
func RandomSeeded(seed uint64) Initializer { return kmeans.RandomSeeded{Seed: seed} }

// PlusPlus returns a k-means++ initializer using the given seed.
func PlusPlus(seed uint64) Initializer { return kmeans.PlusPlus{Seed: seed} }
