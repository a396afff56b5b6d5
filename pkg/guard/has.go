package guard

import "reflect"

// Has reports whether v is an object carrying key. When tags are given the
// property value must also satisfy one of them; without tags only presence
// is checked.
//
// Presence is tested three ways, the first hit wins: direct membership (map
// index, exported field name, slice index), a struct field whose json or
// mapstructure tag is key, and for string keys the enumerable own-key list.
func (r *Registry) Has(v any, key any, tags ...Tag) (bool, error) {
	check, err := r.propertyCheck(tags)
	if err != nil {
		return false, err
	}
	return hasKey(v, key, check), nil
}

// HasAll reports whether v carries every key in keys, each checked as in
// Has. An empty key list is vacuously satisfied.
func (r *Registry) HasAll(v any, keys []any, tags ...Tag) (bool, error) {
	check, err := r.propertyCheck(tags)
	if err != nil {
		return false, err
	}
	for _, k := range keys {
		if !hasKey(v, k, check) {
			return false, nil
		}
	}
	return true, nil
}

func (r *Registry) propertyCheck(tags []Tag) (Guard, error) {
	if len(tags) == 0 {
		return IsAny, nil
	}
	return r.Check(tags...)
}

func hasKey(v any, key any, check Guard) bool {
	if !IsObject(v) {
		return false
	}
	value, ok := property(reflect.ValueOf(v), key)
	if !ok {
		return false
	}
	return check(value)
}

// Has is Registry.Has on the built-in guards.
func Has(v any, key any, tags ...Tag) (bool, error) {
	return defaultRegistry.Has(v, key, tags...)
}

// HasAll is Registry.HasAll on the built-in guards.
func HasAll(v any, keys []any, tags ...Tag) (bool, error) {
	return defaultRegistry.HasAll(v, keys, tags...)
}
