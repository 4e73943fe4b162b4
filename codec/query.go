package codec

import (
	"encoding/json"
	"fmt"
	"net/url"
)

// Query returns the codec for URL-encoded query strings. The format is flat
// and null-less: Null degrades to the same omission as Absent on encode, a
// missing key decodes as Absent, and values are plain strings. Numbers and
// booleans are recognised on decode so `test=123` round-trips into numeric
// payloads; nested objects are not supported.
func Query() Codec {
	return queryCodec{}
}

type queryCodec struct{}

func (queryCodec) Name() string {
	return "query"
}

func (queryCodec) Marshal(v any) ([]byte, error) {
	m, err := encodeMap(v)
	if err != nil {
		return nil, err
	}
	values := url.Values{}
	for key, val := range pruneNulls(m) {
		switch t := val.(type) {
		case []any:
			for _, elem := range t {
				s, err := scalarString(key, elem)
				if err != nil {
					return nil, err
				}
				values.Add(key, s)
			}
		default:
			s, err := scalarString(key, t)
			if err != nil {
				return nil, err
			}
			values.Add(key, s)
		}
	}
	return []byte(values.Encode()), nil
}

func (queryCodec) Unmarshal(data []byte, v any) error {
	values, err := url.ParseQuery(string(data))
	if err != nil {
		return err
	}
	m := make(map[string]any, len(values))
	for key, vals := range values {
		if len(vals) == 1 {
			m[key] = parseScalar(vals[0])
			continue
		}
		elems := make([]any, 0, len(vals))
		for _, s := range vals {
			elems = append(elems, parseScalar(s))
		}
		m[key] = elems
	}
	return decodeMap(m, v)
}

func scalarString(key string, v any) (string, error) {
	switch v.(type) {
	case map[string]any, []any:
		return "", fmt.Errorf("codec: query format cannot encode nested value for key %q", key)
	}
	return fmt.Sprint(v), nil
}

// parseScalar recovers typed scalars from their query-string spelling.
// Anything that is not a number or boolean stays a string; the format has no
// null token, so "null" is just a four-letter word.
func parseScalar(s string) any {
	switch s {
	case "true":
		return true
	case "false":
		return false
	}
	// json.Unmarshal treats the literal "null" as a no-op, leaving n empty
	// with a nil error; require a non-empty number so the word stays a string.
	var n json.Number
	if err := json.Unmarshal([]byte(s), &n); err == nil && n != "" {
		return normalizeValue(n)
	}
	return s
}
