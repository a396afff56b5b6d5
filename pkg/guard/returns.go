package guard

import (
	"fmt"
	"reflect"
)

// ReturnGuard calls fn with args and reports whether its result satisfies
// the tag the guard was built for. The call really happens: side effects of
// fn are not suppressed.
//
// A panic inside fn is not recovered. When fn's last result is an error and
// it is non-nil, that error is returned unchanged.
type ReturnGuard func(fn any, args ...any) (bool, error)

// IsReturn builds a ReturnGuard for tag. The tag is resolved here, so an
// unknown tag fails before anything is called.
func (r *Registry) IsReturn(tag Tag) (ReturnGuard, error) {
	g, err := r.Lookup(tag)
	if err != nil {
		return nil, err
	}
	return func(fn any, args ...any) (bool, error) {
		result, err := invoke(fn, args)
		if err != nil {
			return false, err
		}
		return g(result), nil
	}, nil
}

// IsReturn is Registry.IsReturn on the built-in guards.
func IsReturn(tag Tag) (ReturnGuard, error) {
	return defaultRegistry.IsReturn(tag)
}

// invoke calls fn and returns its first non-error result, or nil when fn
// returns nothing else.
func invoke(fn any, args []any) (any, error) {
	fv := reflect.ValueOf(fn)
	if fv.Kind() != reflect.Func || fv.IsNil() {
		return nil, fmt.Errorf("%w: %T", ErrNotCallable, fn)
	}
	in, err := arguments(fv.Type(), args)
	if err != nil {
		return nil, err
	}

	out := fv.Call(in)
	if n := len(out); n > 0 && fv.Type().Out(n-1) == errorType {
		if e, _ := out[n-1].Interface().(error); e != nil {
			return nil, e
		}
		out = out[:n-1]
	}
	if len(out) == 0 {
		return nil, nil
	}
	return out[0].Interface(), nil
}

func arguments(ft reflect.Type, args []any) ([]reflect.Value, error) {
	fixed := ft.NumIn()
	if ft.IsVariadic() {
		fixed--
		if len(args) < fixed {
			return nil, fmt.Errorf("%w: want at least %d arguments, got %d", ErrBadArguments, fixed, len(args))
		}
	} else if len(args) != fixed {
		return nil, fmt.Errorf("%w: want %d arguments, got %d", ErrBadArguments, fixed, len(args))
	}

	in := make([]reflect.Value, len(args))
	for i, arg := range args {
		var pt reflect.Type
		if i < fixed {
			pt = ft.In(i)
		} else {
			pt = ft.In(ft.NumIn() - 1).Elem()
		}
		v, err := argument(pt, arg)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i, err)
		}
		in[i] = v
	}
	return in, nil
}

func argument(pt reflect.Type, arg any) (reflect.Value, error) {
	if arg == nil {
		switch pt.Kind() {
		case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
			return reflect.Zero(pt), nil
		}
		return reflect.Value{}, fmt.Errorf("%w: nil is not a %s", ErrBadArguments, pt)
	}
	v := reflect.ValueOf(arg)
	if !v.Type().AssignableTo(pt) {
		return reflect.Value{}, fmt.Errorf("%w: %s is not assignable to %s", ErrBadArguments, v.Type(), pt)
	}
	return v, nil
}
