// Package distance provides the Euclidean metric used by the refinement loop.
//
// Both functions require points of equal dimensionality and return
// *ErrDimensionMismatch otherwise.
//
// # Usage
//
//	d, err := distance.Euclidean(a, b)
//	sq, err := distance.SquaredEuclidean(a, b)
package distance
