package codec

import (
	"github.com/pelletier/go-toml/v2"
)

// TOML returns the codec for TOML, backed by github.com/pelletier/go-toml/v2.
// TOML has no null value, so Null degrades to the same omission as Absent on
// encode, and a missing key always decodes as Absent; the two states are
// indistinguishable on this wire. That is a limitation of the format, not of
// the bridge.
func TOML() Codec {
	return tomlCodec{}
}

type tomlCodec struct{}

func (tomlCodec) Name() string {
	return "toml"
}

func (tomlCodec) Marshal(v any) ([]byte, error) {
	m, err := encodeMap(v)
	if err != nil {
		return nil, err
	}
	return toml.Marshal(pruneNulls(m))
}

func (tomlCodec) Unmarshal(data []byte, v any) error {
	var m map[string]any
	if err := toml.Unmarshal(data, &m); err != nil {
		return err
	}
	return decodeMap(m, v)
}
