package codec

import "encoding/json"

// JSON returns the codec for JSON. The Possible hooks and omitzero tags do
// all the work here; this codec exists so all four formats share one front
// door.
func JSON() Codec {
	return jsonCodec{}
}

type jsonCodec struct{}

func (jsonCodec) Name() string {
	return "json"
}

func (jsonCodec) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

func (jsonCodec) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}
