package schema

import (
	"encoding/json"
	"fmt"
)

// MarshalJSON serializes the schema with Type values rendered by name.
func (s FieldSchema) MarshalJSON() ([]byte, error) {
	if s == nil {
		return []byte("null"), nil
	}

	raw := make(map[string]any, len(s))
	for key, spec := range s {
		switch v := spec.(type) {
		case nil:
			return nil, fmt.Errorf("field %s: spec is nil", key)
		case Type:
			raw[key] = v.Name()
		default:
			raw[key] = v
		}
	}

	return json.Marshal(raw)
}

// UnmarshalJSON deserializes the schema, turning nested arrays of objects
// into []FieldSchema.
func (s *FieldSchema) UnmarshalJSON(data []byte) error {
	if s == nil {
		return fmt.Errorf("schema: UnmarshalJSON on nil pointer")
	}

	if string(data) == "null" {
		*s = nil
		return nil
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	parsed, err := normalize(raw)
	if err != nil {
		return err
	}

	*s = parsed
	return nil
}
