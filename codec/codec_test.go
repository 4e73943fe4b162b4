package codec

import (
	"testing"

	possible "github.com/goliatone/go-possible"
)

// host is the shared fixture: one tri-state field named "test", tagged so
// every format can skip it when Absent.
type host struct {
	Test possible.Possible[int64] `json:"test,omitzero" yaml:"test,omitempty"`
}

func TestCodecNames(t *testing.T) {
	cases := []struct {
		codec Codec
		want  string
	}{
		{JSON(), "json"},
		{YAML(), "yaml"},
		{TOML(), "toml"},
		{Query(), "query"},
	}
	for _, tc := range cases {
		if got := tc.codec.Name(); got != tc.want {
			t.Fatalf("Name() = %q, want %q", got, tc.want)
		}
	}
}

func TestJSONCodec(t *testing.T) {
	cases := []struct {
		name  string
		value possible.Possible[int64]
		want  string
	}{
		{"present", possible.Of[int64](123), `{"test":123}`},
		{"null", possible.Null[int64](), `{"test":null}`},
		{"absent", possible.Absent[int64](), `{}`},
	}
	for _, tc := range cases {
		raw, err := JSON().Marshal(host{Test: tc.value})
		if err != nil {
			t.Fatalf("%s: marshal: %v", tc.name, err)
		}
		if string(raw) != tc.want {
			t.Fatalf("%s: marshal = %s, want %s", tc.name, raw, tc.want)
		}
		var back host
		if err := JSON().Unmarshal(raw, &back); err != nil {
			t.Fatalf("%s: unmarshal: %v", tc.name, err)
		}
		if back.Test != tc.value {
			t.Fatalf("%s: round trip gave %v", tc.name, back.Test)
		}
	}
}

func TestYAMLCodec(t *testing.T) {
	cases := []struct {
		name  string
		value possible.Possible[int64]
		want  string
	}{
		{"present", possible.Of[int64](123), "test: 123\n"},
		{"null", possible.Null[int64](), "test: null\n"},
		{"absent", possible.Absent[int64](), "{}\n"},
	}
	for _, tc := range cases {
		raw, err := YAML().Marshal(host{Test: tc.value})
		if err != nil {
			t.Fatalf("%s: marshal: %v", tc.name, err)
		}
		if string(raw) != tc.want {
			t.Fatalf("%s: marshal = %q, want %q", tc.name, raw, tc.want)
		}
		var back host
		if err := YAML().Unmarshal(raw, &back); err != nil {
			t.Fatalf("%s: unmarshal: %v", tc.name, err)
		}
		if back.Test != tc.value {
			t.Fatalf("%s: round trip gave %v", tc.name, back.Test)
		}
	}
}
