package schema

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/aretw0/typeguard/pkg/guard"
)

// Type defines the contract for field validation.
// Implementations determine how values are validated against a type.
type Type interface {
	// Name returns the schema notation of the type (e.g., "string", "number?").
	Name() string
	// Validate checks if a value conforms to this type. A missing field is
	// validated as nil.
	Validate(value any) error
}

// --- Built-in Type Implementations ---

// PrimitiveType accepts values whose unboxed kind is its tag. Pointers are
// rejected: a *string is not a "string" field.
type PrimitiveType struct {
	tag guard.Tag
}

func (t *PrimitiveType) Name() string { return string(t.tag) }

func (t *PrimitiveType) Validate(value any) error {
	if value == nil {
		return fmt.Errorf("required")
	}
	if got := guard.PrimitiveOf(value); got != t.tag {
		return fmt.Errorf("expected %s, got %s", t.tag, got)
	}
	return nil
}

// OptionalType accepts nil and typed nils, and otherwise defers to the
// wrapped type.
type OptionalType struct {
	elemType Type
}

func (t *OptionalType) Name() string { return t.elemType.Name() + "?" }

func (t *OptionalType) Validate(value any) error {
	if guard.IsNull(value) {
		return nil
	}
	return t.elemType.Validate(value)
}

// ArrayType validates slices whose every element satisfies a compiled
// sub-schema. Nil is not accepted, even for an empty array field.
type ArrayType struct {
	elem *Validator
}

func (t *ArrayType) Name() string { return "[" + t.elem.String() + "]" }

func (t *ArrayType) Validate(value any) error {
	if !guard.IsArray(value) {
		return fmt.Errorf("expected array, got %s", guard.TypeOf(value))
	}

	rv := reflect.ValueOf(value)
	for i := 0; i < rv.Len(); i++ {
		if err := t.elem.Check(rv.Index(i).Interface()); err != nil {
			return fmt.Errorf("element %d: %w", i, err)
		}
	}
	return nil
}

// NeverType rejects every value. Lenient compilation uses it for field
// specs it does not understand.
type NeverType struct {
	spec any
}

func (t *NeverType) Name() string { return fmt.Sprintf("never(%v)", t.spec) }

func (t *NeverType) Validate(any) error {
	return fmt.Errorf("unsupported field spec %v", t.spec)
}

// --- Factory Functions ---

// String creates a strict string field type.
func String() Type { return &PrimitiveType{tag: guard.TagString} }

// Number creates a strict number field type.
func Number() Type { return &PrimitiveType{tag: guard.TagNumber} }

// Boolean creates a strict boolean field type.
func Boolean() Type { return &PrimitiveType{tag: guard.TagBoolean} }

// Optional makes a field type accept absent and nil values.
func Optional(elemType Type) Type {
	return &OptionalType{elemType: elemType}
}

// ArrayOf creates an array field type whose elements satisfy v.
func ArrayOf(v *Validator) Type {
	return &ArrayType{elem: v}
}

// ParseType converts a tag string to a Type.
// Supports "string", "number" and "boolean", each optionally suffixed by "?".
func ParseType(typeStr string) (Type, error) {
	if base, ok := strings.CutSuffix(typeStr, "?"); ok {
		elemType, err := ParseType(base)
		if err != nil {
			return nil, err
		}
		if _, nested := elemType.(*OptionalType); nested {
			return nil, fmt.Errorf("unsupported type: %s", typeStr)
		}
		return Optional(elemType), nil
	}

	switch typeStr {
	case "string":
		return String(), nil
	case "number":
		return Number(), nil
	case "boolean":
		return Boolean(), nil
	default:
		return nil, fmt.Errorf("unsupported type: %s", typeStr)
	}
}
