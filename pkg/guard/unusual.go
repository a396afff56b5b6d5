package guard

import "reflect"

// IsNever is the vacuous guard: no value satisfies it.
func IsNever(any) bool { return false }

// IsUnknown accepts every value.
func IsUnknown(any) bool { return true }

// IsAny accepts every value.
func IsAny(any) bool { return true }

// IsNull reports whether v is absent: the nil interface or a typed nil.
func IsNull(v any) bool {
	if v == nil {
		return true
	}
	return classify(reflect.ValueOf(v)) == TagNull
}

// IsTrue reports whether v is the bool literal true.
func IsTrue(v any) bool { return v == true }

// IsFalse reports whether v is the bool literal false.
func IsFalse(v any) bool { return v == false }

// IsArray reports whether v is a non-nil slice or an array.
func IsArray(v any) bool {
	if v == nil {
		return false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice:
		return !rv.IsNil()
	case reflect.Array:
		return true
	}
	return false
}

// IsPromise reports whether v is a channel or an Awaitable.
func IsPromise(v any) bool {
	if v == nil {
		return false
	}
	if _, ok := v.(Awaitable); ok {
		return !IsNull(v)
	}
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Chan && !rv.IsNil()
}

// IsDate reports whether v is a time.Time or a non-nil *time.Time.
func IsDate(v any) bool {
	return TypeOf(v) == TagDate
}

// IsRegExp is unsupported and always reports false. TypeOf still classifies
// *regexp.Regexp values as "regexp".
func IsRegExp(any) bool { return false }

// IsTypeOf reports whether v is a string naming a built-in tag.
func IsTypeOf(v any) bool {
	if !IsString(v) {
		return false
	}
	s, ok := stringValue(v)
	return ok && IsBuiltin(s)
}

// IsKeyOf reports whether v can be used as a property key: a string, a
// number or a symbol.
func IsKeyOf(v any) bool {
	switch TypeOf(v) {
	case TagString, TagNumber, TagSymbol:
		return true
	}
	return false
}

// IsClass reports whether v looks like a constructor. Go has no
// constructors, so the check is a heuristic: a reflect.Type, or a func
// whose results are exactly one struct (or pointer to struct) optionally
// followed by an error, such as func(...) (*T, error).
func IsClass(v any) bool {
	if v == nil {
		return false
	}
	if t, ok := v.(reflect.Type); ok {
		return t != nil
	}
	if !IsFunction(v) {
		return false
	}
	ft := reflect.TypeOf(v)
	switch ft.NumOut() {
	case 1:
	case 2:
		if ft.Out(1) != errorType {
			return false
		}
	default:
		return false
	}
	out := ft.Out(0)
	if out.Kind() == reflect.Ptr {
		out = out.Elem()
	}
	return out.Kind() == reflect.Struct
}

// Unusual returns the guards of the composite, literal and special kinds.
func Unusual() map[Tag]Guard {
	return map[Tag]Guard{
		TagNever:   IsNever,
		TagUnknown: IsUnknown,
		TagNull:    IsNull,
		TagTrue:    IsTrue,
		TagFalse:   IsFalse,
		TagArray:   IsArray,
		TagPromise: IsPromise,
		TagDate:    IsDate,
		TagRegExp:  IsRegExp,
		TagTypeOf:  IsTypeOf,
		TagKeyOf:   IsKeyOf,
		TagClass:   IsClass,
		TagAny:     IsAny,
	}
}

func stringValue(v any) (string, bool) {
	rv := indirect(reflect.ValueOf(v))
	if rv.Kind() != reflect.String {
		return "", false
	}
	return rv.String(), true
}
