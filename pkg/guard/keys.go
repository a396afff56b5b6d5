package guard

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// property looks key up on the container rv, trying direct membership,
// then tagged struct fields, then the enumerable own-key list.
func property(rv reflect.Value, key any) (any, bool) {
	rv = indirect(rv)
	if !rv.IsValid() || key == nil {
		return nil, false
	}
	if v, ok := directMember(rv, key); ok {
		return v, true
	}
	if v, ok := taggedField(rv, key); ok {
		return v, true
	}
	if s, ok := key.(string); ok {
		return enumerableKey(rv, s)
	}
	return nil, false
}

func directMember(rv reflect.Value, key any) (any, bool) {
	switch rv.Kind() {
	case reflect.Map:
		k, ok := mapKey(rv.Type().Key(), key)
		if !ok {
			return nil, false
		}
		v := rv.MapIndex(k)
		if !v.IsValid() {
			return nil, false
		}
		return v.Interface(), true
	case reflect.Struct:
		name, ok := key.(string)
		if !ok {
			return nil, false
		}
		f, ok := rv.Type().FieldByName(name)
		if !ok || !f.IsExported() {
			return nil, false
		}
		fv, err := rv.FieldByIndexErr(f.Index)
		if err != nil || !fv.CanInterface() {
			return nil, false
		}
		return fv.Interface(), true
	case reflect.Slice, reflect.Array:
		kv := reflect.ValueOf(key)
		var i int
		switch kv.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			i = int(kv.Int())
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			i = int(kv.Uint())
		default:
			return nil, false
		}
		if i < 0 || i >= rv.Len() {
			return nil, false
		}
		return rv.Index(i).Interface(), true
	}
	return nil, false
}

// mapKey converts key to the map's key type without lossy conversions:
// numbers only convert between numeric kinds when the value round-trips,
// strings only between string kinds.
func mapKey(kt reflect.Type, key any) (reflect.Value, bool) {
	kv := reflect.ValueOf(key)
	if !kv.Comparable() {
		// slices, maps and funcs cannot index a map
		return reflect.Value{}, false
	}
	if kv.Type().AssignableTo(kt) {
		return kv, true
	}
	switch {
	case kv.Kind() == reflect.String && kt.Kind() == reflect.String:
		return kv.Convert(kt), true
	case isNumericKind(kv.Kind()) && isNumericKind(kt.Kind()):
		if isUnsignedKind(kt.Kind()) && isNegative(kv) {
			return reflect.Value{}, false
		}
		conv := kv.Convert(kt)
		if conv.Convert(kv.Type()).Interface() != kv.Interface() {
			return reflect.Value{}, false
		}
		return conv, true
	case kt.Kind() == reflect.Interface && kv.Type().Implements(kt):
		return kv, true
	}
	return reflect.Value{}, false
}

func isNumericKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

func isUnsignedKind(k reflect.Kind) bool {
	switch k {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return true
	}
	return false
}

func isNegative(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int() < 0
	case reflect.Float32, reflect.Float64:
		return v.Float() < 0
	}
	return false
}

// taggedField finds an exported struct field whose json or mapstructure tag
// names key.
func taggedField(rv reflect.Value, key any) (any, bool) {
	name, ok := key.(string)
	if !ok || rv.Kind() != reflect.Struct {
		return nil, false
	}
	t := rv.Type()
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		for _, tagKey := range []string{"json", "mapstructure"} {
			tag, _, _ := strings.Cut(f.Tag.Get(tagKey), ",")
			if tag != "" && tag != "-" && tag == name {
				return rv.Field(i).Interface(), true
			}
		}
	}
	return nil, false
}

func enumerableKey(rv reflect.Value, name string) (any, bool) {
	keys, values := ownEntries(rv)
	for i, k := range keys {
		if k == name {
			return values[i], true
		}
	}
	return nil, false
}

// ownEntries lists the enumerable own keys of a container with their values.
// Map keys are stringified, slice indexes are decimal and struct fields are
// named the way mapstructure names them.
func ownEntries(rv reflect.Value) ([]string, []any) {
	rv = indirect(rv)
	var keys []string
	var values []any
	switch rv.Kind() {
	case reflect.Map:
		iter := rv.MapRange()
		for iter.Next() {
			keys = append(keys, fmt.Sprint(iter.Key().Interface()))
			values = append(values, iter.Value().Interface())
		}
	case reflect.Slice, reflect.Array:
		for i := 0; i < rv.Len(); i++ {
			keys = append(keys, strconv.Itoa(i))
			values = append(values, rv.Index(i).Interface())
		}
	case reflect.Struct:
		structEntries(rv, &keys, &values)
	}
	return keys, values
}

// structEntries lists exported fields under their mapstructure name,
// promoting the fields of untagged embedded structs.
func structEntries(rv reflect.Value, keys *[]string, values *[]any) {
	t := rv.Type()
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		name, _, _ := strings.Cut(f.Tag.Get("mapstructure"), ",")
		if name == "-" {
			continue
		}
		if f.Anonymous && name == "" {
			if fv := indirect(rv.Field(i)); fv.Kind() == reflect.Struct {
				structEntries(fv, keys, values)
				continue
			}
		}
		fv := rv.Field(i)
		if !f.IsExported() || !fv.CanInterface() {
			continue
		}
		if name == "" {
			name = f.Name
		}
		*keys = append(*keys, name)
		*values = append(*values, fv.Interface())
	}
}
