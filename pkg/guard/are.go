package guard

import "reflect"

// Are reports whether every own value of mapping satisfies one of tags.
// Maps, structs (exported fields) and slices are accepted; an empty
// container is vacuously satisfied and anything else is not a mapping.
func (r *Registry) Are(mapping any, tags ...Tag) (bool, error) {
	check, err := r.Check(tags...)
	if err != nil {
		return false, err
	}
	if IsNull(mapping) {
		return false, nil
	}
	rv := indirect(reflect.ValueOf(mapping))
	switch rv.Kind() {
	case reflect.Map, reflect.Struct, reflect.Slice, reflect.Array:
	default:
		return false, nil
	}
	_, values := ownEntries(rv)
	for _, v := range values {
		if !check(v) {
			return false, nil
		}
	}
	return true, nil
}

// Are is Registry.Are on the built-in guards.
func Are(mapping any, tags ...Tag) (bool, error) {
	return defaultRegistry.Are(mapping, tags...)
}
