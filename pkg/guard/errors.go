package guard

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownTag is returned when a tag is not present in the registry.
	ErrUnknownTag = errors.New("unknown type tag")

	// ErrDuplicateTag is returned when a registry is built with two guards
	// for the same tag.
	ErrDuplicateTag = errors.New("duplicate type tag")

	// ErrNotCallable is returned by a ReturnGuard given a value that is not a func.
	ErrNotCallable = errors.New("value is not callable")

	// ErrBadArguments is returned by a ReturnGuard when the arguments do not
	// fit the func signature.
	ErrBadArguments = errors.New("arguments do not match signature")
)

// UnknownTagError names the tag a dispatch could not resolve.
type UnknownTagError struct {
	Tag Tag
}

func (e *UnknownTagError) Error() string {
	return fmt.Sprintf("%s: %q", ErrUnknownTag, string(e.Tag))
}

// Unwrap allows errors.Is(err, ErrUnknownTag).
func (e *UnknownTagError) Unwrap() error {
	return ErrUnknownTag
}
