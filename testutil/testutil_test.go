package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hupe1980/lloyd/model"
)

func TestUniformPoints(t *testing.T) {
	rng := NewRNG(4711)

	v := rng.UniformPoints(8, 32)

	assert.Equal(t, 8, len(v))
	assert.Equal(t, 32, len(v[0]))
	assert.Less(t, v[0][0], 1.0)
	assert.GreaterOrEqual(t, v[1][0], 0.0)
}

func TestGaussianPoints(t *testing.T) {
	rng := NewRNG(4711)

	v := rng.GaussianPoints(16, 3)

	assert.Equal(t, 16, len(v))
	assert.Equal(t, -1, v.CheckHomogeneous())
}

func TestBlobs(t *testing.T) {
	rng := NewRNG(4711)
	centers := []model.Point{{0, 0}, {100, 100}}

	v, labels := rng.Blobs(centers, 10, 0.5)

	assert.Equal(t, 20, len(v))
	assert.Equal(t, 20, len(labels))
	assert.Equal(t, 0, labels[0])
	assert.Equal(t, 1, labels[1])
	assert.InDelta(t, 100.0, v[1][0], 5)
}

func TestReset(t *testing.T) {
	rng := NewRNG(4711)
	v1 := rng.UniformPoints(1, 10)

	rng.Reset()
	v2 := rng.UniformPoints(1, 10)

	assert.Equal(t, v1, v2)
}

func TestSamePartition(t *testing.T) {
	assert.True(t, SamePartition([]int{0, 0, 1, 2}, []int{2, 2, 0, 1}))
	assert.False(t, SamePartition([]int{0, 0, 1}, []int{0, 1, 1}))
	assert.False(t, SamePartition([]int{0, 1}, []int{0, 0}))
	assert.False(t, SamePartition([]int{0}, []int{0, 0}))
}

func TestSampleDataset(t *testing.T) {
	data, labels := SampleDataset()
	assert.Equal(t, 9, data.Len())
	assert.Equal(t, 9, len(labels))
	assert.Equal(t, 2, data.Dim())
}
