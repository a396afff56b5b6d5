package schema

import (
	"errors"
	"math"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func personSchema() FieldSchema {
	return FieldSchema{
		"name": "string",
		"age":  "number?",
	}
}

func TestValidate_Person(t *testing.T) {
	v, err := Compile(personSchema())
	require.NoError(t, err)

	assert.True(t, v.Validate(map[string]any{"name": "Al"}))
	assert.True(t, v.Validate(map[string]any{"name": "Al", "age": 42}))
	assert.True(t, v.Validate(map[string]any{"name": "Al", "age": nil}))
	assert.False(t, v.Validate(map[string]any{"name": "Al", "age": "old"}))
	assert.False(t, v.Validate(map[string]any{}), "name is required")
}

func TestValidate_Falsy(t *testing.T) {
	v := MustCompile(FieldSchema{})

	for _, candidate := range []any{nil, (*int)(nil), map[string]any(nil), 0, 0.0, math.NaN(), "", false} {
		assert.False(t, v.Validate(candidate), "%#v", candidate)
	}
	for _, candidate := range []any{map[string]any{}, 1, "x", true, []any{}} {
		assert.True(t, v.Validate(candidate), "%#v", candidate)
	}
}

func TestValidate_NonObjectCandidate(t *testing.T) {
	required := MustCompile(FieldSchema{"name": "string"})
	optional := MustCompile(FieldSchema{"name": "string?"})

	assert.False(t, required.Validate("abc"))
	assert.True(t, optional.Validate("abc"), "a truthy scalar has no fields")
}

func TestValidate_Strict(t *testing.T) {
	v := MustCompile(FieldSchema{"name": "string", "ok": "boolean"})
	name, ok := "Al", true

	assert.True(t, v.Validate(map[string]any{"name": "Al", "ok": true}))
	assert.False(t, v.Validate(map[string]any{"name": &name, "ok": true}), "boxed strings are rejected")
	assert.False(t, v.Validate(map[string]any{"name": "Al", "ok": &ok}), "boxed booleans are rejected")
	assert.False(t, v.Validate(map[string]any{"name": "Al", "ok": "true"}))
}

func TestValidate_Arrays(t *testing.T) {
	v := MustCompile(FieldSchema{
		"title": "string",
		"tags":  []FieldSchema{{"label": "string", "weight": "number?"}},
	})

	tests := []struct {
		desc      string
		candidate map[string]any
		want      bool
	}{
		{"valid", map[string]any{"title": "t", "tags": []any{map[string]any{"label": "a"}}}, true},
		{"empty array", map[string]any{"title": "t", "tags": []any{}}, true},
		{"missing array", map[string]any{"title": "t"}, false},
		{"nil array", map[string]any{"title": "t", "tags": nil}, false},
		{"bad item", map[string]any{"title": "t", "tags": []any{map[string]any{"label": 1}}}, false},
		{"nil item", map[string]any{"title": "t", "tags": []any{nil}}, false},
		{"not an array", map[string]any{"title": "t", "tags": "a,b"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			assert.Equal(t, tt.want, v.Validate(tt.candidate))
		})
	}
}

func TestValidate_NestedArrays(t *testing.T) {
	v := MustCompile(FieldSchema{
		"rows": []FieldSchema{{
			"cells": []FieldSchema{{"value": "number"}},
		}},
	})

	ok := map[string]any{"rows": []any{
		map[string]any{"cells": []any{map[string]any{"value": 1}, map[string]any{"value": 2}}},
	}}
	bad := map[string]any{"rows": []any{
		map[string]any{"cells": []any{map[string]any{"value": "1"}}},
	}}

	assert.True(t, v.Validate(ok))
	assert.False(t, v.Validate(bad))
}

type tag struct {
	Label string `mapstructure:"label"`
}

type article struct {
	Title string `mapstructure:"title"`
	Views int    `mapstructure:"views"`
	Tags  []tag  `mapstructure:"tags"`
}

func TestValidate_Structs(t *testing.T) {
	v := MustCompile(FieldSchema{
		"title": "string",
		"views": "number",
		"tags":  []FieldSchema{{"label": "string"}},
	})

	a := article{Title: "Go", Views: 3, Tags: []tag{{Label: "lang"}}}
	assert.True(t, v.Validate(a))
	assert.True(t, v.Validate(&a))

	assert.False(t, v.Validate(struct {
		Title int `mapstructure:"title"`
	}{Title: 1}))
}

func TestValidate_StringKeyedMaps(t *testing.T) {
	v := MustCompile(FieldSchema{"name": "string"})
	assert.True(t, v.Validate(map[string]string{"name": "Al"}))
	assert.False(t, v.Validate(map[int]string{1: "Al"}))
}

func TestValidate_TypeValues(t *testing.T) {
	v := MustCompile(FieldSchema{"score": Optional(Number()), "name": String()})
	assert.True(t, v.Validate(map[string]any{"name": "x"}))
	assert.False(t, v.Validate(map[string]any{"name": "x", "score": "high"}))
}

func TestCompile_Idempotent(t *testing.T) {
	a := MustCompile(personSchema())
	b := MustCompile(personSchema())
	assert.Equal(t, a.String(), b.String())

	candidates := []any{
		map[string]any{"name": "Al"},
		map[string]any{"name": "Al", "age": "old"},
		map[string]any{},
		nil,
	}
	for _, c := range candidates {
		first := a.Validate(c)
		assert.Equal(t, first, a.Validate(c), "repeat validation drifted for %#v", c)
		assert.Equal(t, first, b.Validate(c), "recompiled validator disagrees for %#v", c)
	}
}

func TestCompile_FieldOrder(t *testing.T) {
	v := MustCompile(FieldSchema{"b": "string", "a": "number", "c": "boolean?"})
	assert.Equal(t, []string{"a", "b", "c"}, v.Fields())
	assert.Equal(t, "{a:number,b:string,c:boolean?}", v.String())

	typ, ok := v.Type("c")
	require.True(t, ok)
	assert.Equal(t, "boolean?", typ.Name())

	_, ok = v.Type("missing")
	assert.False(t, ok)
}

func TestCompile_SchemaErrors(t *testing.T) {
	tests := []struct {
		desc  string
		fs    FieldSchema
		field string
	}{
		{"unsupported tag", FieldSchema{"a": "array"}, "a"},
		{"unknown tag", FieldSchema{"a": "int"}, "a"},
		{"non string spec", FieldSchema{"a": 5}, "a"},
		{"nested object", FieldSchema{"a": map[string]any{"b": "string"}}, "a"},
		{"empty array spec", FieldSchema{"items": []FieldSchema{}}, "items"},
		{"array of tags", FieldSchema{"items": []any{"string"}}, "items"},
		{"nested field", FieldSchema{"items": []FieldSchema{{"x": "int"}}}, "items[].x"},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			v, err := Compile(tt.fs)
			require.Error(t, err)
			assert.Nil(t, v)
			assert.ErrorIs(t, err, ErrSchema)

			var schemaErr *SchemaError
			require.ErrorAs(t, err, &schemaErr)
			assert.Equal(t, tt.field, schemaErr.Field)
		})
	}
}

func TestCompile_Lenient(t *testing.T) {
	fs := FieldSchema{"name": "string", "kind": "array"}

	v, err := Compile(fs, Lenient())
	require.NoError(t, err)

	assert.False(t, v.Validate(map[string]any{"name": "x", "kind": []any{}}))

	err = v.Check(map[string]any{"name": "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported field spec")
}

func TestMustCompile_Panics(t *testing.T) {
	assert.Panics(t, func() { MustCompile(FieldSchema{"a": "nope"}) })
}

func TestCheck(t *testing.T) {
	v := MustCompile(FieldSchema{
		"api_key": "string",
		"retries": "number",
		"debug":   "boolean?",
	})

	t.Run("success", func(t *testing.T) {
		assert.NoError(t, v.Check(map[string]any{"api_key": "k", "retries": 3}))
	})

	t.Run("falsy candidate", func(t *testing.T) {
		err := v.Check(nil)
		assert.ErrorIs(t, err, ErrFalsy)
		assert.Nil(t, ValidationErrors(err))
	})

	t.Run("multiple errors", func(t *testing.T) {
		err := v.Check(map[string]any{"retries": "three", "debug": "yes"})
		require.Error(t, err)

		var aggr *AggregateError
		require.ErrorAs(t, err, &aggr)
		require.Len(t, aggr.Errors, 3)

		keys := make([]string, 0, len(aggr.Errors))
		for _, e := range aggr.Errors {
			var ve *ValidationError
			require.True(t, errors.As(e, &ve))
			keys = append(keys, ve.Key)
		}
		assert.Equal(t, []string{"api_key", "debug", "retries"}, keys)
	})

	t.Run("agrees with Validate", func(t *testing.T) {
		candidates := []any{
			map[string]any{"api_key": "k", "retries": 1},
			map[string]any{"api_key": 1, "retries": 1},
			"",
		}
		for _, c := range candidates {
			assert.Equal(t, v.Validate(c), v.Check(c) == nil, "%#v", c)
		}
	})
}

func TestValidator_ConcurrentUse(t *testing.T) {
	v := MustCompile(personSchema())
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				assert.True(t, v.Validate(map[string]any{"name": "Al", "age": j}))
			}
		}()
	}
	wg.Wait()
}

func TestValidationError_String(t *testing.T) {
	tests := []struct {
		err  *ValidationError
		want string
	}{
		{
			&ValidationError{Key: "api_key", Reason: "required", Value: nil},
			`field "api_key": required`,
		},
		{
			&ValidationError{Key: "retries", Reason: "expected number, got string", Value: "invalid"},
			`field "retries": expected number, got string (got string)`,
		},
	}

	for _, tt := range tests {
		got := tt.err.Error()
		if got != tt.want {
			t.Errorf("ValidationError.Error() = %q, want %q", got, tt.want)
		}
	}
}

func TestAggregateError_String(t *testing.T) {
	aggr := &AggregateError{
		Errors: []error{
			&ValidationError{Key: "api_key", Reason: "required", Value: nil},
			&ValidationError{Key: "retries", Reason: "expected number", Value: "invalid"},
		},
	}

	result := aggr.Error()
	if !strings.Contains(result, "2 validation errors") {
		t.Errorf("AggregateError.Error() should mention 2 errors, got: %s", result)
	}

	single := &AggregateError{Errors: aggr.Errors[:1]}
	assert.Equal(t, `field "api_key": required`, single.Error())
}

func TestValidationErrors(t *testing.T) {
	aggr := &AggregateError{
		Errors: []error{
			&ValidationError{Key: "api_key", Reason: "required", Value: nil},
		},
	}

	errs := ValidationErrors(aggr)
	if len(errs) != 1 {
		t.Errorf("ValidationErrors() = %d errors, want 1", len(errs))
	}

	// Non-aggregate error returns nil
	err := &ValidationError{Key: "api_key", Reason: "required", Value: nil}
	errs = ValidationErrors(err)
	if errs != nil {
		t.Errorf("ValidationErrors() on non-aggregate = %v, want nil", errs)
	}
}

func TestSchemaError_String(t *testing.T) {
	err := &SchemaError{Field: "a", Reason: "unsupported type: int"}
	assert.Equal(t, `invalid schema: field "a": unsupported type: int`, err.Error())

	err = &SchemaError{Reason: "document is empty"}
	assert.Equal(t, "invalid schema: document is empty", err.Error())
}
