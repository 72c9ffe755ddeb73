package rop

import (
	"errors"
	"reflect"
)

var ErrNilError = errors.New("rop: failed with a nil error")

// IsNil reports whether i is nil or holds a nil pointer, map, slice,
// channel or func. Values of other kinds are never nil.
func IsNil(i any) bool {
	if i == nil {
		return true
	}

	switch v := reflect.ValueOf(i); v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return v.IsNil()
	default:
		return false
	}
}

// GetErrors flattens an errors.Join tree one level.
func GetErrors(err error) []error {
	if IsNil(err) {
		return []error{}
	}

	e, ok := err.(interface{ Unwrap() []error })
	if ok {
		return e.Unwrap()
	}

	return []error{err}
}
