package config

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"
)

// --- Reference YAML methods ---

// UnmarshalYAML accepts a scalar: "name" or "@service_id".
func (r *Reference) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: expected a backend name or @service, got %v", node.Line, kindName(node.Kind))
	}

	*r = ParseReference(node.Value)

	return nil
}

// MarshalYAML renders the reference in configuration form.
func (r Reference) MarshalYAML() (any, error) {
	return r.String(), nil
}

// --- CacheSelector YAML methods ---

// UnmarshalYAML accepts "none", "file" or a service id.
func (c *CacheSelector) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: expected none, file or a service id, got %v", node.Line, kindName(node.Kind))
	}

	if node.Value == "" {
		return fmt.Errorf("line %d: metadata cache must not be empty", node.Line)
	}

	*c = ParseCacheSelector(node.Value)

	return nil
}

// MarshalYAML renders the selector in configuration form.
func (c CacheSelector) MarshalYAML() (any, error) {
	return c.String(), nil
}

// --- Namer YAML methods ---

// UnmarshalYAML accepts either a bare service id or a map:
//   - "uploader.namer_uniqid"
//   - {service: uploader.namer_property, options: {property: slug}}
func (n *Namer) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var s string
		if err := node.Decode(&s); err != nil {
			return err
		}

		*n = Namer{Service: s}

		return nil

	case yaml.MappingNode:
		// plain avoids recursing into this method
		type plain Namer

		var p plain
		if err := decodeStrict(node, &p); err != nil {
			return err
		}

		*n = Namer(p)

		return nil

	default:
		return fmt.Errorf("line %d: expected namer service id or map, got %v", node.Line, kindName(node.Kind))
	}
}

// MarshalYAML renders a namer without options as its bare service id.
func (n Namer) MarshalYAML() (any, error) {
	if len(n.Options) == 0 {
		return n.Service, nil
	}

	type plain Namer

	return plain(n), nil
}

// --- Mappings YAML methods ---

// UnmarshalYAML decodes the "mappings" map, keeping declaration order and
// applying per-mapping defaults before each entry is decoded.
func (ms *Mappings) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode && node.Tag == "!!null" {
		*ms = nil
		return nil
	}

	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: mappings must be a map of name to mapping, got %v", node.Line, kindName(node.Kind))
	}

	out := make(Mappings, 0, len(node.Content)/2)

	for i := 0; i+1 < len(node.Content); i += 2 {
		key, val := node.Content[i], node.Content[i+1]

		m := DefaultMapping()
		m.Name = key.Value

		// "avatar: ~" is a mapping with all defaults
		if !(val.Kind == yaml.ScalarNode && val.Tag == "!!null") {
			if err := decodeStrict(val, &m); err != nil {
				return fmt.Errorf("mapping %q: %w", key.Value, err)
			}
		}

		out = append(out, m)
	}

	*ms = out

	return nil
}

// MarshalYAML renders mappings as an ordered map.
func (ms Mappings) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}

	for i := range ms {
		var val yaml.Node
		if err := val.Encode(ms[i]); err != nil {
			return nil, fmt.Errorf("mapping %q: %w", ms[i].Name, err)
		}

		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: ms[i].Name},
			&val,
		)
	}

	return node, nil
}

// decodeStrict decodes node into out rejecting unknown keys. Node.Decode
// drops the decoder's KnownFields setting, so the node is re-encoded.
func decodeStrict(node *yaml.Node, out any) error {
	data, err := yaml.Marshal(node)
	if err != nil {
		return err
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	if err := dec.Decode(out); err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}

	return nil
}

func kindName(k yaml.Kind) string {
	switch k {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "map"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return "unknown"
	}
}
