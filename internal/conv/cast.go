package conv

import (
	"fmt"
	"math"
)

// IntToUint32 converts a point index to uint32, failing on negative values
// and values beyond the uint32 range.
func IntToUint32(v int) (uint32, error) {
	if v < 0 {
		return 0, fmt.Errorf("index %d cannot be converted to uint32 (negative)", v)
	}
	if uint64(v) > math.MaxUint32 {
		return 0, fmt.Errorf("index %d cannot be converted to uint32 (too large)", v)
	}
	return uint32(v), nil
}
