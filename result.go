package lloyd

import (
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/lloyd/codec"
	"github.com/hupe1980/lloyd/internal/conv"
	"github.com/hupe1980/lloyd/internal/kmeans"
	"github.com/hupe1980/lloyd/model"
)

// IterationStats describes one completed iteration.
type IterationStats struct {
	Iteration int     `json:"iteration"`
	Changes   int     `json:"changes"`
	Shift     float64 `json:"shift"`
	Inertia   float64 `json:"inertia"`
}

// Result is the outcome of a refinement run.
//
// A Result is not modified by the library after it is returned.
type Result struct {
	// Centroids holds one centroid per cluster id.
	Centroids []model.Point `json:"centroids"`
	// Assignments maps each input point, in input order, to its cluster id.
	Assignments []int `json:"assignments"`
	// Iterations is the number of iterations performed, at most the
	// configured maximum.
	Iterations int `json:"iterations"`
	// Converged is false when the run stopped at the iteration limit.
	Converged bool `json:"converged"`
	// Sizes holds the number of points per cluster. A cluster may end a run
	// with zero points; its centroid is then the last value it held.
	Sizes []int `json:"sizes"`
	// Inertia is the within-cluster sum of squared distances.
	Inertia float64 `json:"inertia"`
	// Trace is only recorded with WithTrace(true).
	Trace []IterationStats `json:"trace,omitempty"`
}

// K returns the number of clusters.
func (r *Result) K() int { return len(r.Centroids) }

// EmptyClusters returns the ids of clusters without any assigned point.
func (r *Result) EmptyClusters() []int {
	var ids []int
	for k, n := range r.Sizes {
		if n == 0 {
			ids = append(ids, k)
		}
	}
	return ids
}

// Members returns the indices of the points assigned to cluster k.
func (r *Result) Members(k int) (*roaring.Bitmap, error) {
	if k < 0 || k >= len(r.Centroids) {
		return nil, fmt.Errorf("cluster id %d out of range [0, %d)", k, len(r.Centroids))
	}

	bm := roaring.New()
	for i, c := range r.Assignments {
		if c != k {
			continue
		}
		idx, err := conv.IntToUint32(i)
		if err != nil {
			return nil, fmt.Errorf("member index: %w", err)
		}
		bm.Add(idx)
	}
	return bm, nil
}

// Predict returns the id of the centroid nearest to p.
// Ties go to the lowest cluster id.
func (r *Result) Predict(p model.Point) (int, error) {
	k, _, err := kmeans.Nearest(p, r.Centroids)
	if err != nil {
		return kmeans.Unassigned, translateError(err)
	}
	return k, nil
}

// Encode serializes the result with c. If c is nil, codec.Default is used.
func (r *Result) Encode(c codec.Codec) ([]byte, error) {
	if c == nil {
		c = codec.Default
	}
	b, err := c.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("encode result (%s): %w", c.Name(), err)
	}
	return b, nil
}

// DecodeResult parses a result produced by Result.Encode.
// If c is nil, codec.Default is used.
func DecodeResult(c codec.Codec, data []byte) (*Result, error) {
	if c == nil {
		c = codec.Default
	}
	var r Result
	if err := c.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("decode result (%s): %w", c.Name(), err)
	}
	if len(r.Sizes) != len(r.Centroids) {
		return nil, fmt.Errorf("decode result: %d sizes for %d centroids", len(r.Sizes), len(r.Centroids))
	}
	for i, c := range r.Assignments {
		if c < 0 || c >= len(r.Centroids) {
			return nil, fmt.Errorf("decode result: point %d assigned to cluster %d of %d", i, c, len(r.Centroids))
		}
	}
	return &r, nil
}
