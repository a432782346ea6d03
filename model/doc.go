// Package model defines the core data types shared by the clustering packages.
//
// # Data Types
//
//   - Point: a location in feature space ([]float64)
//   - Dataset: an ordered sequence of points
//
// Points are treated as immutable. Functions that keep a point beyond the call
// (initializers, results) store a clone.
package model
