/*
Package typeguard provides runtime type guards and declarative validators for Go values of static type any.

Values decoded from JSON or YAML, generic maps, structs and pointers carry their shape only at runtime. Typeguard classifies such values with a closed set of type tags modelled on dynamic-language kinds and checks them against declarative field schemas.

# Packages

  - pkg/guard: the tag set, TypeOf, the named predicates (IsString, IsNull, ...) and the dispatching guards Is, Has, HasAll, Are and IsReturn.
  - pkg/schema: FieldSchema documents compiled into reusable, concurrency-safe Validators.
  - cmd/typeguard: a CLI that validates YAML/JSON documents and classifies literals.

# Value model

The nil interface is "undefined" while a typed nil (nil pointer, map, slice, func, chan) is "null". A non-nil pointer to a string, number or bool is the boxed form of that kind: the primary guards accept it, strict schema fields do not.

# Usage

	package main

	import (
		"fmt"
		"log"

		"github.com/aretw0/typeguard/pkg/guard"
		"github.com/aretw0/typeguard/pkg/schema"
	)

	func main() {
		fmt.Println(guard.TypeOf([]any{})) // array

		ok, err := guard.Is(5, guard.TagString, guard.TagNumber)
		if err != nil {
			log.Fatal(err) // unknown tag
		}
		fmt.Println(ok) // true

		person, err := schema.Compile(schema.FieldSchema{
			"name": "string",
			"age":  "number?",
		})
		if err != nil {
			log.Fatal(err) // malformed schema
		}
		fmt.Println(person.Validate(map[string]any{"name": "Al"})) // true
	}
*/
package typeguard
