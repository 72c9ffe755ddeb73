// Copyright (c) 2025 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package try turns panics raised by user callbacks into ordinary errors.
package try

import (
	"errors"
	"fmt"
)

// PanicError carries the value a callback panicked with.
type PanicError struct {
	Value any
}

func (e PanicError) Error() string {
	return fmt.Sprintf("recovered from panic: %v", e.Value)
}

// Unwrap returns the panic value when it is itself an error.
func (e PanicError) Unwrap() error {
	err, _ := e.Value.(error)
	return err
}

// Recover must be deferred. It stores any recovered panic into *err,
// joining it with an error that was already set.
func Recover(err *error) {
	r := recover()
	if r == nil {
		return
	}

	perr := PanicError{
		Value: r,
	}
	if *err == nil {
		*err = perr
		return
	}
	*err = errors.Join(*err, perr)
}

// Repanic raises err again. Only a bare PanicError is unwrapped to restore
// the original panic value; an error that wraps one is raised as is.
func Repanic(err error) {
	if perr, ok := err.(PanicError); ok {
		panic(perr.Value)
	}
	panic(err)
}
