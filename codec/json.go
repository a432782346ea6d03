package codec

import (
	"encoding/json"
)

// JSON is the standard-library JSON codec.
//
// NaN and infinite coordinates cannot be represented and fail to encode.
type JSON struct {
	// Indent, if set, pretty-prints output with this indent per level.
	Indent string
}

// Marshal encodes the value to JSON.
func (c JSON) Marshal(v any) ([]byte, error) {
	if c.Indent != "" {
		return json.MarshalIndent(v, "", c.Indent)
	}
	return json.Marshal(v)
}

// Unmarshal decodes the JSON data into v.
func (JSON) Unmarshal(data []byte, v any) error { return json.Unmarshal(data, v) }

// Name returns "json".
func (JSON) Name() string { return "json" }

// Default is used by Result.Encode and DecodeResult when no codec is given.
var Default Codec = GoJSON{}
