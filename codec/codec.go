// Package codec bridges structs carrying possible.Possible fields to formats
// whose Go encoders cannot themselves distinguish the three states. Every
// codec pivots through the JSON hook layer on Possible: encoding goes struct
// to JSON to a generic map (Absent fields drop out via their omitzero tags),
// decoding goes format to map to JSON to struct (missing keys leave fields at
// their zero value, which is Absent; nulls become Null; anything else becomes
// Present).
//
// Fields must carry `json` tags with `omitzero` for absence to round-trip:
//
//	type Patch struct {
//	    Name possible.Possible[string] `json:"name,omitzero"`
//	}
package codec

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Codec encodes and decodes values for one wire format.
type Codec interface {
	// Name identifies the format, e.g. "json" or "toml".
	Name() string
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
}

// encodeMap renders v through its JSON hooks into a generic map. Absent
// fields tagged omitzero are already gone by the time the map exists.
// Numbers are kept as json.Number so integer payloads survive the pivot
// without turning into floats.
func encodeMap(v any) (map[string]any, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var m map[string]any
	if err := dec.Decode(&m); err != nil {
		return nil, fmt.Errorf("codec: value does not encode to an object: %w", err)
	}
	return normalizeValue(m).(map[string]any), nil
}

// decodeMap pushes a generic map through the JSON hooks into v. Keys missing
// from m never visit their fields, leaving them Absent.
func decodeMap(m map[string]any, v any) error {
	raw, err := json.Marshal(m)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, v)
}

// pruneNulls removes explicit nulls recursively. Formats with no null concept
// cannot tell Null from Absent, so both degrade to omission on their wire.
func pruneNulls(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for key, val := range m {
		switch t := val.(type) {
		case nil:
			continue
		case map[string]any:
			out[key] = pruneNulls(t)
		default:
			out[key] = val
		}
	}
	return out
}

// normalizeValue rewrites json.Number into int64 or float64 so downstream
// encoders emit `123` rather than a quoted string or `123.0`.
func normalizeValue(v any) any {
	switch t := v.(type) {
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return i
		}
		if f, err := t.Float64(); err == nil {
			return f
		}
		return t.String()
	case map[string]any:
		for key, val := range t {
			t[key] = normalizeValue(val)
		}
		return t
	case []any:
		for i, val := range t {
			t[i] = normalizeValue(val)
		}
		return t
	}
	return v
}
