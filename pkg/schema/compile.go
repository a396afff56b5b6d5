package schema

import "fmt"

// CompileOption configures Compile.
type CompileOption func(*compiler)

type compiler struct {
	lenient bool
}

// Lenient compiles field specs that are not understood into fields that
// never validate, instead of failing with a SchemaError.
func Lenient() CompileOption {
	return func(c *compiler) {
		c.lenient = true
	}
}

// Compile turns a field schema into a reusable Validator. Fields are checked
// in lexical order. Compiling has no side effects: the same schema always
// yields validators that behave identically.
func Compile(fs FieldSchema, opts ...CompileOption) (*Validator, error) {
	c := &compiler{}
	for _, opt := range opts {
		opt(c)
	}
	return c.compile(fs, "")
}

// MustCompile is like Compile but panics if the schema is invalid.
func MustCompile(fs FieldSchema, opts ...CompileOption) *Validator {
	v, err := Compile(fs, opts...)
	if err != nil {
		panic(err)
	}
	return v
}

func (c *compiler) compile(fs FieldSchema, prefix string) (*Validator, error) {
	v := &Validator{fields: make([]field, 0, len(fs))}
	for _, name := range fs.Fields() {
		typ, err := c.fieldType(fs[name], prefix+name)
		if err != nil {
			return nil, err
		}
		v.fields = append(v.fields, field{name: name, typ: typ})
	}
	return v, nil
}

func (c *compiler) fieldType(spec any, path string) (Type, error) {
	switch s := spec.(type) {
	case string:
		t, err := ParseType(s)
		if err != nil {
			return c.unsupported(spec, path, err.Error())
		}
		return t, nil
	case Type:
		return s, nil
	case []FieldSchema, []map[string]any, []any:
		n, err := normalizeSpec(spec)
		if err != nil {
			return nil, &SchemaError{Field: path, Reason: err.Error()}
		}
		items, ok := n.([]FieldSchema)
		if !ok {
			return c.unsupported(spec, path, "array items must be field schemas")
		}
		if len(items) == 0 {
			return c.unsupported(spec, path, "array field needs an item schema")
		}
		elem, err := c.compile(items[0], path+"[].")
		if err != nil {
			return nil, err
		}
		return ArrayOf(elem), nil
	default:
		return c.unsupported(spec, path, fmt.Sprintf("unsupported field spec of type %T", spec))
	}
}

func (c *compiler) unsupported(spec any, path, reason string) (Type, error) {
	if c.lenient {
		return &NeverType{spec: spec}, nil
	}
	return nil, &SchemaError{Field: path, Reason: reason}
}
