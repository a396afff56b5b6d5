package schema

import (
	"fmt"
	"sort"
)

// FieldSchema maps field names to their expected types.
//
// A value is either a tag string ("string", "number", "boolean", optionally
// suffixed by "?"), a Type built with the factory functions, or a one-element
// slice holding the FieldSchema of the items of an array field:
//
//	FieldSchema{
//	    "name": "string",
//	    "age":  "number?",
//	    "tags": []FieldSchema{{"label": "string"}},
//	}
type FieldSchema map[string]any

// Fields returns the field names in lexical order.
func (s FieldSchema) Fields() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// normalize converts generic decoded documents (map[string]any, []any) into
// FieldSchema values, leaving leaf specs untouched.
func normalize(raw map[string]any) (FieldSchema, error) {
	out := make(FieldSchema, len(raw))
	for name, spec := range raw {
		n, err := normalizeSpec(spec)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", name, err)
		}
		out[name] = n
	}
	return out, nil
}

func normalizeSpec(spec any) (any, error) {
	switch s := spec.(type) {
	case FieldSchema:
		return normalize(s)
	case map[string]any:
		return normalize(s)
	case []FieldSchema:
		items := make([]FieldSchema, len(s))
		for i, item := range s {
			n, err := normalize(item)
			if err != nil {
				return nil, err
			}
			items[i] = n
		}
		return items, nil
	case []map[string]any:
		items := make([]FieldSchema, len(s))
		for i, item := range s {
			n, err := normalize(item)
			if err != nil {
				return nil, err
			}
			items[i] = n
		}
		return items, nil
	case []any:
		items := make([]FieldSchema, len(s))
		for i, item := range s {
			n, err := normalizeSpec(item)
			if err != nil {
				return nil, err
			}
			fs, ok := n.(FieldSchema)
			if !ok {
				// leave malformed arrays for Compile to report
				return spec, nil
			}
			items[i] = fs
		}
		return items, nil
	default:
		return spec, nil
	}
}
