package schema

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Parse reads a field schema from a YAML document. JSON documents are valid
// YAML and parse the same way:
//
//	name: string
//	age: number?
//	tags:
//	  - label: string
func Parse(data []byte) (FieldSchema, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse schema: %w", err)
	}
	if raw == nil {
		return nil, &SchemaError{Reason: "document is empty"}
	}
	return normalize(raw)
}

// Load reads and parses a schema file.
func Load(path string) (FieldSchema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema: %w", err)
	}
	fs, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return fs, nil
}
