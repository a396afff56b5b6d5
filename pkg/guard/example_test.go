package guard_test

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/aretw0/typeguard/pkg/guard"
)

func ExampleTypeOf() {
	fmt.Println(guard.TypeOf(5))
	fmt.Println(guard.TypeOf([]any{}))
	fmt.Println(guard.TypeOf(nil))
	fmt.Println(guard.TypeOf((*int)(nil)))
	// Output:
	// number
	// array
	// undefined
	// null
}

func ExampleIs() {
	ok, _ := guard.Is(5, guard.TagString, guard.TagNumber)
	fmt.Println(ok)

	_, err := guard.Is(5, "strnig")
	fmt.Println(errors.Is(err, guard.ErrUnknownTag))
	// Output:
	// true
	// true
}

func ExampleHas() {
	user := map[string]any{"name": "Al", "age": 42}

	ok, _ := guard.Has(user, "age", guard.TagNumber)
	fmt.Println(ok)

	ok, _ = guard.HasAll(user, []any{"name", "email"})
	fmt.Println(ok)
	// Output:
	// true
	// false
}

func ExampleAre() {
	ok, _ := guard.Are(map[string]any{"a": 1, "b": 2}, guard.TagNumber)
	fmt.Println(ok)
	// Output: true
}

func ExampleIsReturn() {
	isNumber, _ := guard.IsReturn(guard.TagNumber)

	ok, err := isNumber(strconv.Atoi, "12")
	fmt.Println(ok, err)

	_, err = isNumber(strconv.Atoi, "twelve")
	fmt.Println(err != nil)
	// Output:
	// true <nil>
	// true
}
