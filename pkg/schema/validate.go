package schema

import (
	"fmt"
	"math"
	"reflect"
	"strings"

	"github.com/mitchellh/mapstructure"

	"github.com/aretw0/typeguard/pkg/guard"
)

type field struct {
	name string
	typ  Type
}

// Validator is a compiled field schema. It holds no mutable state and can
// be shared between goroutines.
type Validator struct {
	fields []field
}

// Validate reports whether candidate is truthy and every field passes.
func (v *Validator) Validate(candidate any) bool {
	if !truthy(candidate) {
		return false
	}
	data := fieldsOf(candidate)
	for _, f := range v.fields {
		if f.typ.Validate(data[f.name]) != nil {
			return false
		}
	}
	return true
}

// Check is Validate with a reason. It returns ErrFalsy for falsy candidates
// and an *AggregateError listing every failing field otherwise.
func (v *Validator) Check(candidate any) error {
	if !truthy(candidate) {
		return fmt.Errorf("%w: %s", ErrFalsy, guard.TypeOf(candidate))
	}

	data := fieldsOf(candidate)
	var errs []error
	for _, f := range v.fields {
		value := data[f.name]
		if err := f.typ.Validate(value); err != nil {
			errs = append(errs, &ValidationError{
				Key:    f.name,
				Reason: err.Error(),
				Value:  value,
			})
		}
	}

	if len(errs) > 0 {
		return &AggregateError{Errors: errs}
	}
	return nil
}

// Fields returns the validated field names in check order.
func (v *Validator) Fields() []string {
	names := make([]string, len(v.fields))
	for i, f := range v.fields {
		names[i] = f.name
	}
	return names
}

// Type returns the compiled type of a field.
func (v *Validator) Type(name string) (Type, bool) {
	for _, f := range v.fields {
		if f.name == name {
			return f.typ, true
		}
	}
	return nil, false
}

// String renders the validator in schema notation, e.g. {age:number?,name:string}.
func (v *Validator) String() string {
	parts := make([]string, len(v.fields))
	for i, f := range v.fields {
		parts[i] = f.name + ":" + f.typ.Name()
	}
	return "{" + strings.Join(parts, ",") + "}"
}

// truthy mirrors dynamic-language truthiness: nil, typed nils, false, zero
// numbers, NaN and the empty string are falsy; everything else, empty maps
// included, is truthy.
func truthy(v any) bool {
	if guard.IsNull(v) {
		return false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool:
		return rv.Bool()
	case reflect.String:
		return rv.Len() > 0
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() != 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() != 0
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		return f != 0 && !math.IsNaN(f)
	}
	return true
}

// fieldsOf exposes the fields of a candidate as a map. Maps with string keys
// are read directly, structs are decoded by mapstructure. Any other truthy
// value has no fields.
func fieldsOf(candidate any) map[string]any {
	if m, ok := candidate.(map[string]any); ok {
		return m
	}

	rv := reflect.ValueOf(candidate)
	for rv.Kind() == reflect.Ptr && !rv.IsNil() {
		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil
		}
		out := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			out[iter.Key().String()] = iter.Value().Interface()
		}
		return out
	case reflect.Struct:
		out := make(map[string]any)
		if err := mapstructure.Decode(rv.Interface(), &out); err != nil {
			return nil
		}
		return out
	}
	return nil
}
