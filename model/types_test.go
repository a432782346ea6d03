package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPoint(t *testing.T) {
	p := Point{1.5, 2}
	assert.Equal(t, 2, p.Dim())
	assert.Equal(t, "(1.5, 2)", p.String())

	c := p.Clone()
	c[0] = 9
	assert.Equal(t, 1.5, p[0])
	assert.False(t, p.Equal(c))
	assert.True(t, p.Equal(Point{1.5, 2}))
}

func TestDataset(t *testing.T) {
	var empty Dataset
	assert.Equal(t, 0, empty.Len())
	assert.Equal(t, 0, empty.Dim())
	assert.Equal(t, -1, empty.CheckHomogeneous())

	d := NewDataset([]float64{0, 0}, []float64{1, 1}, []float64{2})
	assert.Equal(t, 3, d.Len())
	assert.Equal(t, 2, d.Dim())
	assert.Equal(t, 2, d.CheckHomogeneous())

	cp := ClonePoints(d[:2])
	cp[1][0] = 5
	assert.Equal(t, 1.0, d[1][0])
}
