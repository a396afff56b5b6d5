// Package guard provides runtime type guards for values of static type any.
//
// Every value has a class tag (see TypeOf) and every tag has a guard: a total,
// side-effect free predicate. Guards are grouped in an immutable Registry and
// dispatched by tag name.
//
// Basic usage:
//
//	guard.TypeOf([]any{1, 2})              // "array"
//	guard.IsString("x")                     // true
//	ok, err := guard.Is(v, guard.TagString, guard.TagNumber)
//
// Several tags are combined with OR. An unregistered tag is reported as an
// *UnknownTagError instead of a silent false:
//
//	_, err := guard.Is(v, "strnig")
//	errors.Is(err, guard.ErrUnknownTag) // true
//
// Property and set guards work on maps, structs and slices:
//
//	guard.Has(map[string]any{"a": 1}, "a", guard.TagNumber)   // true, nil
//	guard.Are(map[string]any{"a": 1, "b": "x"}, guard.TagNumber) // false, nil
//
// Go values are mapped onto the tags as follows. The nil interface is
// "undefined" and typed nils are "null". A non-nil pointer to a string,
// number or bool is the boxed form of that scalar and satisfies the scalar's
// guard. *big.Int is a "bigint", *Symbol a "symbol", time.Time a "date",
// channels and Awaitable values are promises.
//
// Custom tags can be added when building a registry:
//
//	reg, err := guard.NewRegistry(
//	    guard.WithGuard("uuid", isUUID),
//	)
//
// The registry is never modified afterwards and may be shared freely between
// goroutines.
package guard
