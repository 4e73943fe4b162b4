package possible

import "gopkg.in/yaml.v3"

// MarshalYAML encodes a Present payload as itself and both empty states as a
// YAML null. Tag the host field `yaml:",omitempty"` so Absent is dropped from
// the document instead; yaml.v3 consults IsZero for that decision.
func (p Possible[T]) MarshalYAML() (any, error) {
	if p.state == StatePresent {
		return p.value, nil
	}
	return nil, nil
}

// UnmarshalYAML decodes any of YAML's null spellings (`null`, `~`, an empty
// scalar) as Null and everything else as a Present payload. Fields missing
// from the document are never visited and stay Absent.
func (p *Possible[T]) UnmarshalYAML(node *yaml.Node) error {
	if node.Tag == "!!null" {
		*p = Null[T]()
		return nil
	}
	var v T
	if err := node.Decode(&v); err != nil {
		return err
	}
	*p = Of(v)
	return nil
}
