package throwing

import (
	"github.com/ib-77/resultify/internal/try"
)

type Function[T, R any] func(in T) (R, error)

// Lift wraps a function that cannot return an error. It may still panic.
func Lift[T, R any](f func(in T) R) Function[T, R] {
	return func(in T) (R, error) {
		return f(in), nil
	}
}

// Apply calls f and converts a panic into a try.PanicError.
func (f Function[T, R]) Apply(in T) (out R, err error) {
	defer try.Recover(&err)
	return f(in)
}

// Unchecked returns a plain function that panics when f fails.
func (f Function[T, R]) Unchecked() func(in T) R {
	return func(in T) R {
		out, err := f.Apply(in)
		if err != nil {
			try.Repanic(err)
		}
		return out
	}
}

type Supplier[T any] func() (T, error)

func LiftSupplier[T any](s func() T) Supplier[T] {
	return func() (T, error) {
		return s(), nil
	}
}

// Get calls s and converts a panic into a try.PanicError.
func (s Supplier[T]) Get() (out T, err error) {
	defer try.Recover(&err)
	return s()
}

func (s Supplier[T]) Unchecked() func() T {
	return func() T {
		out, err := s.Get()
		if err != nil {
			try.Repanic(err)
		}
		return out
	}
}

type Consumer[T any] func(in T) error

// Try calls c and converts a panic into a try.PanicError.
func (c Consumer[T]) Try(in T) (err error) {
	defer try.Recover(&err)
	return c(in)
}

// Accept calls c and drops any failure, returned or panicked.
func (c Consumer[T]) Accept(in T) {
	_ = c.Try(in)
}
