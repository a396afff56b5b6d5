package guard

import (
	"encoding/json"
	"math/big"
	"reflect"
	"regexp"
	"time"
)

var (
	timeType      = reflect.TypeOf(time.Time{})
	regexpType    = reflect.TypeOf(regexp.Regexp{})
	bigIntType    = reflect.TypeOf(big.Int{})
	symbolType    = reflect.TypeOf(Symbol{})
	jsonNumType   = reflect.TypeOf(json.Number(""))
	awaitableType = reflect.TypeOf((*Awaitable)(nil)).Elem()
	errorType     = reflect.TypeOf((*error)(nil)).Elem()
)

// TypeOf returns the class tag of v. It never fails: the nil interface is
// "undefined", typed nils are "null" and everything that is not a scalar,
// array, function, date, regexp or promise is "object".
//
// Non-nil pointers are classified by their pointee, so a *string is a
// "string" the same way a boxed string keeps its class.
func TypeOf(v any) Tag {
	if v == nil {
		return TagUndefined
	}
	return classify(reflect.ValueOf(v))
}

// maxIndirections bounds how many pointers and interfaces are followed, so
// self-referencing pointers terminate.
const maxIndirections = 64

func classify(rv reflect.Value) Tag {
	return classifyAt(rv, 0)
}

func classifyAt(rv reflect.Value, depth int) Tag {
	switch rv.Kind() {
	case reflect.Invalid:
		return TagUndefined
	case reflect.Ptr, reflect.Interface:
		if rv.IsNil() {
			return TagNull
		}
		if rv.Type().Implements(awaitableType) {
			return TagPromise
		}
		if depth >= maxIndirections {
			return TagObject
		}
		return classifyAt(rv.Elem(), depth+1)
	case reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		if rv.IsNil() {
			return TagNull
		}
	}

	switch rv.Type() {
	case timeType:
		return TagDate
	case regexpType:
		return TagRegExp
	case bigIntType:
		return TagBigInt
	case symbolType:
		return TagSymbol
	case jsonNumType:
		return TagNumber
	}
	if rv.Type().Implements(awaitableType) {
		return TagPromise
	}

	switch rv.Kind() {
	case reflect.String:
		return TagString
	case reflect.Bool:
		return TagBoolean
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return TagNumber
	case reflect.Slice, reflect.Array:
		return TagArray
	case reflect.Func:
		return TagFunction
	case reflect.Chan:
		return TagPromise
	default:
		return TagObject
	}
}

// PrimitiveOf is the "typeof" view of v: scalars keep their tag only in their
// unboxed form, and every non-scalar (null included) is an "object". The
// result is one of undefined, string, number, bigint, boolean, symbol,
// function or object. *big.Int and *Symbol are the natural forms of their
// kinds, not boxes.
func PrimitiveOf(v any) Tag {
	if v == nil {
		return TagUndefined
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Ptr && !rv.IsNil() {
		switch rv.Type().Elem() {
		case bigIntType:
			return TagBigInt
		case symbolType:
			return TagSymbol
		}
	}
	switch tag := classify(rv); tag {
	case TagString, TagNumber, TagBigInt, TagBoolean, TagSymbol:
		if rv.Kind() == reflect.Ptr {
			return TagObject
		}
		return tag
	case TagFunction:
		return TagFunction
	default:
		return TagObject
	}
}

// boxedOf returns the primitive tag of the value a non-nil pointer wraps, or
// the empty tag when v is not a pointer.
func boxedOf(v any) Tag {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return ""
	}
	return PrimitiveOf(rv.Elem().Interface())
}

// indirect follows non-nil pointers and interfaces down to a concrete value,
// giving up after maxIndirections steps.
func indirect(rv reflect.Value) reflect.Value {
	for i := 0; i < maxIndirections && (rv.Kind() == reflect.Ptr || rv.Kind() == reflect.Interface); i++ {
		if rv.IsNil() {
			return rv
		}
		rv = rv.Elem()
	}
	return rv
}
