package rop

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/ib-77/resultify/internal/try"
	"github.com/ib-77/resultify/pkg/rop/throwing"
)

// Result is Ok, Empty or Err. The zero value is Empty.
type Result[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	err       error
	hasValue  bool
}

func newResult[T any](value T, hasValue bool, err error) Result[T] {
	return Result[T]{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		value:     value,
		hasValue:  hasValue,
		err:       err,
	}
}

// Of returns Ok(value), or Empty when value is nil.
func Of[T any](value T) Result[T] {
	if IsNil(value) {
		return Empty[T]()
	}
	return newResult(value, true, nil)
}

// FromPair normalizes a (value, error) pair. A non-nil error always wins and
// the value is dropped. The check is err != nil, so an error interface holding
// a typed nil pointer still counts as an error and is stored as ErrNilError.
// Otherwise the pair behaves like Of(value).
func FromPair[T any](value T, err error) Result[T] {
	if err != nil {
		return Fail[T](err)
	}
	return Of(value)
}

// Fail returns Err(err). A nil err is replaced by ErrNilError.
func Fail[T any](err error) Result[T] {
	if IsNil(err) {
		err = ErrNilError
	}
	var zero T
	return newResult(zero, false, err)
}

func Empty[T any]() Result[T] {
	var zero T
	return newResult(zero, false, nil)
}

// From calls fn and captures its outcome. A panic inside fn becomes Err.
func From[T any](fn func() (T, error)) Result[T] {
	return FromPair[T](throwing.Supplier[T](fn).Get())
}

// First calls fns in order and returns the first present result. Calls stop
// at the first present result. Failures are discarded and Empty is returned
// when nothing is present.
func First[T any](fns ...func() (T, error)) Result[T] {
	return List(fns)
}

// List is First for a slice of callables.
func List[T any](fns []func() (T, error)) Result[T] {
	for _, fn := range fns {
		if r := From(fn); r.IsPresent() {
			return r
		}
	}
	return Empty[T]()
}

// Map applies f to the value. Err propagates without calling f. On Empty, f
// receives the zero value, the same value Get returns.
func Map[T, U any](r Result[T], f func(in T) (U, error)) Result[U] {
	if r.IsError() {
		return Fail[U](r.err)
	}
	return FromPair[U](throwing.Function[T, U](f).Apply(r.value))
}

// Get returns the value, or the zero value when absent.
func (r Result[T]) Get() T {
	return r.value
}

// Error returns the captured error, or nil unless r is Err.
func (r Result[T]) Error() error {
	return r.err
}

// Value is the comma-ok view of r. Errors are not representable.
func (r Result[T]) Value() (T, bool) {
	return r.value, r.hasValue
}

// Unwrap returns the value and error the way a Go function would.
func (r Result[T]) Unwrap() (T, error) {
	return r.value, r.err
}

func (r Result[T]) IsPresent() bool {
	return r.hasValue
}

func (r Result[T]) IsError() bool {
	return r.err != nil
}

// IsEmpty is true for both Empty and Err.
func (r Result[T]) IsEmpty() bool {
	return r.IsError() || !r.IsPresent()
}

func (r Result[T]) Id() uuid.UUID {
	return r.id
}

func (r Result[T]) CreatedAt() time.Time {
	return r.createdAt
}

// Recover is a no-op unless r is Err. Otherwise f maps the error to a value;
// if f fails the new failure replaces the old one.
func (r Result[T]) Recover(f func(err error) (T, error)) Result[T] {
	if !r.IsError() {
		return r
	}
	return FromPair[T](throwing.Function[error, T](f).Apply(r.err))
}

// RecoverUntil retries Recover(f) on r while the outcome is still Err and
// until is not met. until.Met is consulted after every failed attempt, so
// a stateful condition such as AtMost is used up by a single call. A nil
// until allows one attempt.
func (r Result[T]) RecoverUntil(f func(err error) (T, error), until Condition[T]) Result[T] {
	if until == nil {
		return r.Recover(f)
	}

	result := r.Recover(f)
	for result.IsError() && !until.Met(result) {
		result = r.Recover(f)
	}
	return result
}

// InvokeBestEffort passes r to effect and returns r unchanged. Whatever
// effect returns or panics with is discarded.
func (r Result[T]) InvokeBestEffort(effect func(r Result[T]) error) Result[T] {
	throwing.Consumer[Result[T]](effect).Accept(r)
	return r
}

// Provide calls supplier when no value is present, which includes Err.
func (r Result[T]) Provide(supplier func() (T, error)) Result[T] {
	if r.IsPresent() {
		return r
	}
	return From(supplier)
}

// Failsafe replaces an Empty or Err result with Of(value). The error is
// discarded.
func (r Result[T]) Failsafe(value T) Result[T] {
	if r.IsEmpty() {
		return Of(value)
	}
	return r
}

// Filter demotes a present value to Empty when keep returns false. keep is
// not guarded: a panic inside it propagates to the caller.
func (r Result[T]) Filter(keep func(v T) bool) Result[T] {
	if !r.IsPresent() {
		return r
	}
	if keep(r.value) {
		return r
	}
	return Empty[T]()
}

func (r Result[T]) IfPresent(action func()) {
	if r.IsPresent() {
		action()
	}
}

func (r Result[T]) IfEmpty(action func()) {
	if r.IsEmpty() {
		action()
	}
}

func (r Result[T]) IfError(action func()) {
	if r.IsError() {
		action()
	}
}

// PanicOrGet returns the value, or panics with the captured error when r is
// Err. A captured panic that was not wrapped since is re-raised with the
// original panic value. Empty returns the zero value.
func (r Result[T]) PanicOrGet() T {
	if r.IsError() {
		try.Repanic(r.err)
	}
	return r.value
}

func (r Result[T]) GetOrFailsafe(value T) T {
	return r.Failsafe(value).Get()
}

func (r Result[T]) String() string {
	switch {
	case r.IsError():
		return fmt.Sprintf("Err(%v)", r.err)
	case r.IsPresent():
		return fmt.Sprintf("Ok(%v)", r.value)
	default:
		return "Empty"
	}
}
