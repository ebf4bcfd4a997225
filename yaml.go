package parambuilder

import (
	"gopkg.in/yaml.v3"
)

// ParamsFromYAML reads Params from a YAML mapping - the order of keys in the document is preserved
//
// a null key (e.g. `~: foo`) becomes a null key entry, a null value becomes Null.
// Values must be scalars.
func ParamsFromYAML(data []byte) (*Params, error) {
	result := NewParams()
	if err := yaml.Unmarshal(data, result); err != nil {
		if IsType(err, ErrorArgumentInvalid) {
			return nil, err
		}
		return nil, wrapError(ErrorArgumentInvalid, "data", err, "invalid yaml")
	}
	return result, nil
}

var _ yaml.Unmarshaler = (*Params)(nil)

func (p *Params) UnmarshalYAML(value *yaml.Node) error {
	value = unalias(value)
	if value.Kind != yaml.MappingNode {
		return newError(ErrorArgumentInvalid, "", "yaml params must be a mapping")
	}
	entries := make([]Param, 0, len(value.Content)/2)
	for i := 0; i+1 < len(value.Content); i += 2 {
		kn, vn := unalias(value.Content[i]), unalias(value.Content[i+1])
		if kn.Kind != yaml.ScalarNode {
			return newError(ErrorArgumentInvalid, "", "yaml param key must be a scalar")
		}
		var v any
		if vn.Kind != yaml.ScalarNode {
			return newError(ErrorArgumentInvalid, kn.Value, "yaml param value must be a scalar")
		} else if err := vn.Decode(&v); err != nil {
			return wrapError(ErrorArgumentInvalid, kn.Value, err, "")
		}
		if kn.Tag == "!!null" {
			entries = append(entries, NullKey(v))
		} else {
			entries = append(entries, P(kn.Value, v))
		}
	}
	p.entries = p.entries[:0]
	for _, e := range entries {
		p.Add(e)
	}
	return nil
}

func unalias(n *yaml.Node) *yaml.Node {
	for n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	return n
}
