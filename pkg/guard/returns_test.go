package guard

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsReturn(t *testing.T) {
	isString, err := IsReturn(TagString)
	require.NoError(t, err)

	t.Run("matching result", func(t *testing.T) {
		ok, err := isString(strings.ToUpper, "abc")
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("mismatching result", func(t *testing.T) {
		ok, err := isString(func(a, b int) int { return a + b }, 1, 2)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("variadic", func(t *testing.T) {
		sum := func(xs ...int) int {
			total := 0
			for _, x := range xs {
				total += x
			}
			return total
		}
		isNumber, err := IsReturn(TagNumber)
		require.NoError(t, err)

		ok, err := isNumber(sum, 1, 2, 3)
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = isNumber(sum)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("no result is undefined", func(t *testing.T) {
		isUndefined, err := IsReturn(TagUndefined)
		require.NoError(t, err)
		ok, err := isUndefined(func() {})
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("nil argument for pointer parameter", func(t *testing.T) {
		ok, err := isString(func(p *int) string { return "nil ok" }, nil)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("invokes the callable", func(t *testing.T) {
		calls := 0
		_, err := isString(func() string { calls++; return "" })
		require.NoError(t, err)
		assert.Equal(t, 1, calls)
	})
}

func TestIsReturn_Errors(t *testing.T) {
	isString, err := IsReturn(TagString)
	require.NoError(t, err)

	t.Run("unknown tag fails at construction", func(t *testing.T) {
		g, err := IsReturn("bogus")
		assert.Nil(t, g)
		assert.ErrorIs(t, err, ErrUnknownTag)
	})

	t.Run("callable error propagates unchanged", func(t *testing.T) {
		boom := errors.New("boom")
		ok, err := isString(func() (string, error) { return "", boom })
		assert.False(t, ok)
		assert.Same(t, boom, err)
	})

	t.Run("nil error is not a failure", func(t *testing.T) {
		ok, err := isString(func() (string, error) { return "x", nil })
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("panic propagates", func(t *testing.T) {
		assert.PanicsWithValue(t, "kaboom", func() {
			_, _ = isString(func() string { panic("kaboom") })
		})
	})

	t.Run("not callable", func(t *testing.T) {
		_, err := isString("not a func")
		assert.ErrorIs(t, err, ErrNotCallable)

		_, err = isString((func())(nil))
		assert.ErrorIs(t, err, ErrNotCallable)
	})

	t.Run("bad arguments", func(t *testing.T) {
		_, err := isString(strings.ToUpper)
		assert.ErrorIs(t, err, ErrBadArguments)

		_, err = isString(strings.ToUpper, 5)
		assert.ErrorIs(t, err, ErrBadArguments)

		_, err = isString(strings.ToUpper, nil)
		assert.ErrorIs(t, err, ErrBadArguments)
	})
}
