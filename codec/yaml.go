package codec

import "gopkg.in/yaml.v3"

// YAML returns the codec for YAML documents, backed by gopkg.in/yaml.v3.
// Fields need `yaml:",omitempty"` tags for Absent to be omitted; yaml.v3
// consults Possible.IsZero for that decision. All of YAML's null spellings
// decode to Null.
func YAML() Codec {
	return yamlCodec{}
}

type yamlCodec struct{}

func (yamlCodec) Name() string {
	return "yaml"
}

func (yamlCodec) Marshal(v any) ([]byte, error) {
	return yaml.Marshal(v)
}

func (yamlCodec) Unmarshal(data []byte, v any) error {
	return yaml.Unmarshal(data, v)
}
