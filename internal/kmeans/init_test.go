package kmeans

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/lloyd/model"
	"github.com/hupe1980/lloyd/testutil"
)

func TestFirstK(t *testing.T) {
	data := model.NewDataset([]float64{0, 0}, []float64{1, 1}, []float64{2, 2})

	centroids, err := FirstK{}.Init(data, 2)
	require.NoError(t, err)
	assert.Equal(t, []model.Point{{0, 0}, {1, 1}}, centroids)

	// Centroids must not alias the dataset.
	centroids[0][0] = 42
	assert.Equal(t, 0.0, data[0][0])
}

func TestInitializers_InvalidInput(t *testing.T) {
	data := model.NewDataset([]float64{0, 0}, []float64{1, 1}, []float64{2, 2})

	inits := map[string]Initializer{
		"FirstK":       FirstK{},
		"RandomSeeded": RandomSeeded{Seed: 1},
		"PlusPlus":     PlusPlus{Seed: 1},
	}

	for name, init := range inits {
		t.Run(name, func(t *testing.T) {
			_, err := init.Init(nil, 1)
			assert.ErrorIs(t, err, ErrEmptyDataset)

			_, err = init.Init(data, 5)
			var icc *ErrInvalidClusterCount
			require.ErrorAs(t, err, &icc)
			assert.Equal(t, 5, icc.K)
			assert.Equal(t, 3, icc.N)

			_, err = init.Init(data, 0)
			require.ErrorAs(t, err, &icc)

			centroids, err := init.Init(data, 3)
			require.NoError(t, err)
			assert.Len(t, centroids, 3)
		})
	}
}

func TestRandomSeeded(t *testing.T) {
	data := testutil.NewRNG(7).UniformPoints(50, 3)

	a, err := RandomSeeded{Seed: 99}.Init(data, 10)
	require.NoError(t, err)
	b, err := RandomSeeded{Seed: 99}.Init(data, 10)
	require.NoError(t, err)
	assert.Equal(t, a, b, "same seed must select the same points")

	// Distinct indices: with continuous data, distinct points.
	for i := range a {
		for j := i + 1; j < len(a); j++ {
			assert.False(t, a[i].Equal(a[j]))
		}
	}
}

func TestPlusPlus(t *testing.T) {
	data := testutil.NewRNG(7).UniformPoints(100, 2)

	a, err := PlusPlus{Seed: 3}.Init(data, 8)
	require.NoError(t, err)
	b, err := PlusPlus{Seed: 3}.Init(data, 8)
	require.NoError(t, err)
	assert.Equal(t, a, b)

	for i := range a {
		for j := i + 1; j < len(a); j++ {
			assert.False(t, a[i].Equal(a[j]), "k-means++ must not pick the same point twice")
		}
	}
}

func TestPlusPlus_IdenticalPoints(t *testing.T) {
	data := model.NewDataset([]float64{1, 1}, []float64{1, 1}, []float64{1, 1}, []float64{1, 1})

	centroids, err := PlusPlus{Seed: 11}.Init(data, 4)
	require.NoError(t, err)
	assert.Len(t, centroids, 4)
	for _, c := range centroids {
		assert.Equal(t, model.Point{1, 1}, c)
	}
}

func TestWeightedSample(t *testing.T) {
	rng := newRNG(1)

	for range 20 {
		idx := weightedSample([]float64{0, 5, 0}, []bool{false, false, false}, rng)
		assert.Equal(t, 1, idx)
	}

	// Chosen entries are never returned.
	for range 20 {
		idx := weightedSample([]float64{0, 0, 0}, []bool{true, false, true}, rng)
		assert.Equal(t, 1, idx)
	}
}
