package model

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Point is a location in a real-valued feature space.
type Point []float64

// Dim returns the dimensionality of the point.
func (p Point) Dim() int { return len(p) }

// Clone returns a copy of p that does not share storage.
func (p Point) Clone() Point { return slices.Clone(p) }

// Equal reports whether p and q have identical coordinates.
func (p Point) Equal(q Point) bool { return slices.Equal(p, q) }

// String returns a string representation of the Point, e.g. "(1.5, 2)".
func (p Point) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	for i, v := range p {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
	}
	sb.WriteByte(')')
	return sb.String()
}

// Dataset is an ordered sequence of points indexed 0..N-1.
type Dataset []Point

// Len returns the number of points.
func (d Dataset) Len() int { return len(d) }

// Dim returns the dimensionality of the first point, or 0 for an empty dataset.
func (d Dataset) Dim() int {
	if len(d) == 0 {
		return 0
	}
	return len(d[0])
}

// CheckHomogeneous returns the index of the first point whose dimension differs
// from the first point, or -1 if all points share one dimension.
func (d Dataset) CheckHomogeneous() int {
	dim := d.Dim()
	for i, p := range d {
		if len(p) != dim {
			return i
		}
	}
	return -1
}

// ClonePoints returns a deep copy of points.
func ClonePoints(points []Point) []Point {
	out := make([]Point, len(points))
	for i, p := range points {
		out[i] = p.Clone()
	}
	return out
}

// NewDataset builds a dataset from raw coordinate rows.
func NewDataset(rows ...[]float64) Dataset {
	d := make(Dataset, len(rows))
	for i, r := range rows {
		d[i] = Point(r)
	}
	return d
}

// GoString is used by %#v.
func (d Dataset) GoString() string {
	return fmt.Sprintf("model.Dataset(len=%d, dim=%d)", d.Len(), d.Dim())
}
