package guard

var defaultRegistry = mustRegistry()

func mustRegistry() *Registry {
	r, err := NewRegistry()
	if err != nil {
		panic(err)
	}
	return r
}

// Default returns the registry of built-in guards.
func Default() *Registry {
	return defaultRegistry
}

// Is reports whether v satisfies any of tags using the built-in guards.
//
//	ok, err := guard.Is(v, guard.TagString, guard.TagNumber)
func Is(v any, tags ...Tag) (bool, error) {
	return defaultRegistry.Is(v, tags...)
}

// MustIs is like Is but panics on an unknown tag. It is meant for tag lists
// fixed at compile time.
func MustIs(v any, tags ...Tag) bool {
	ok, err := defaultRegistry.Is(v, tags...)
	if err != nil {
		panic(err)
	}
	return ok
}
