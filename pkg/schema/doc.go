// Package schema compiles declarative field schemas into reusable validators.
//
// A FieldSchema maps field names to tag strings. The supported tags are
// "string", "number" and "boolean"; a trailing "?" makes the field optional
// (absent or nil is accepted). A one-element slice describes an array field
// whose items must satisfy the nested schema.
//
// Basic usage:
//
//	v, err := schema.Compile(schema.FieldSchema{
//	    "name": "string",
//	    "age":  "number?",
//	    "tags": []schema.FieldSchema{{"label": "string"}},
//	})
//	if err != nil {
//	    // the schema itself is malformed (*schema.SchemaError)
//	}
//
//	v.Validate(map[string]any{"name": "Al"}) // true
//	v.Validate(map[string]any{})             // false, name is required
//
// Field checks are strict: a *string does not satisfy "string". Candidates
// must be truthy, so nil, zero numbers, "" and false never validate.
//
// Check reports why a candidate failed:
//
//	if err := v.Check(candidate); err != nil {
//	    for _, e := range schema.ValidationErrors(err) {
//	        // *schema.ValidationError per failing field
//	    }
//	}
//
// Schemas can also be read from YAML or JSON documents:
//
//	fs, err := schema.Parse([]byte(`{"name": "string", "age": "number?"}`))
//
// Unsupported field specs are compile errors. Lenient restores the older
// behaviour of compiling them into fields that never validate.
package schema
