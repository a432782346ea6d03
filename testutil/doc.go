// Package testutil provides testing utilities for lloyd.
//
// This package is intended for use in tests and benchmarks only.
// It provides seeded generators for points and labelled blobs, and helpers
// for checking that a clustering recovers known groups.
//
// # Random Point Generation
//
//	rng := testutil.NewRNG(seed)
//	data := rng.UniformPoints(1000, 8)       // uniform [0, 1)
//	data, labels := rng.Blobs(centers, 50, 0.1)
//
// # Recovery Check
//
//	ok := testutil.SamePartition(labels, result.Assignments)
package testutil
