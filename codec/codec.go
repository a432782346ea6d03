// Package codec encodes clustering results for export.
//
// Encoded results carry no codec marker. Both built-in codecs emit plain JSON,
// so either one decodes the other's output.
package codec

// Codec encodes/decodes values.
// Implementations must be safe for concurrent use.
type Codec interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
	Name() string
}

// ByName returns a compact built-in codec by name ("json" or "go-json").
func ByName(name string) (Codec, bool) {
	switch name {
	case JSON{}.Name():
		return JSON{}, true
	case GoJSON{}.Name():
		return GoJSON{}, true
	default:
		return nil, false
	}
}
