// Package conv provides checked integer conversions for point indices.
//
// Cluster membership is stored in 32-bit bitmaps, so datasets are indexed
// with int but members are addressed with uint32.
package conv
