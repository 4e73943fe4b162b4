package possible

import (
	"bytes"
	"encoding/json"
)

var jsonNull = []byte("null")

// MarshalJSON encodes a Present payload with its own marshalling rules and
// everything else as null. Absent only reaches this method when the host
// struct did not arrange to skip the field; pair the field with the
// `omitzero` tag so Absent is omitted from the output instead of degrading
// to null:
//
//	type Patch struct {
//	    Name possible.Possible[string] `json:"name,omitzero"`
//	}
func (p Possible[T]) MarshalJSON() ([]byte, error) {
	if p.state == StatePresent {
		return json.Marshal(p.value)
	}
	return jsonNull, nil
}

// UnmarshalJSON decodes a JSON null as Null and any other token as a Present
// payload, surfacing payload decode errors verbatim. A field that never
// appears in the input is never visited by the decoder and keeps its zero
// value, which is Absent.
func (p *Possible[T]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, jsonNull) {
		*p = Null[T]()
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*p = Of(v)
	return nil
}

// IsZero reports whether p is Absent. This is the omission predicate the
// embedding struct wires into per-field skipping: encoding/json honours it
// through the `omitzero` tag and yaml.v3 through `omitempty`. The decision to
// skip belongs to the struct and format pairing, so the predicate is exposed
// rather than applied unilaterally here.
func (p Possible[T]) IsZero() bool {
	return p.state == StateAbsent
}
