package tiny

import (
	"context"

	"github.com/ib-77/resultify/pkg/rop"
	"github.com/ib-77/resultify/pkg/rop/solo"
)

type Chain[T any] struct {
	ctx context.Context
	res rop.Result[T]
}

var _ rop.Outcome[int] = Chain[int]{}

func Start[T any](ctx context.Context, r rop.Result[T]) Chain[T] {
	return Chain[T]{ctx: ctx, res: r}
}

func FromValue[T any](ctx context.Context, v T) Chain[T] {
	return Start(ctx, rop.Of(v))
}

// From starts a chain with the outcome of a fallible call
func From[T any](ctx context.Context, fn func(ctx context.Context) (T, error)) Chain[T] {
	return Start(ctx, solo.From(ctx, fn))
}

func (c Chain[T]) Result() rop.Result[T] {
	return c.res
}

func (c Chain[T]) Context() context.Context {
	return c.ctx
}

func (c Chain[T]) Get() T          { return c.res.Get() }
func (c Chain[T]) Error() error    { return c.res.Error() }
func (c Chain[T]) IsPresent() bool { return c.res.IsPresent() }
func (c Chain[T]) IsError() bool   { return c.res.IsError() }
func (c Chain[T]) IsEmpty() bool   { return c.res.IsEmpty() }

func (c Chain[T]) with(r rop.Result[T]) Chain[T] {
	return Chain[T]{ctx: c.ctx, res: r}
}

// Then composes functions that already return rop.Result[T]
func (c Chain[T]) Then(onSuccess func(ctx context.Context, t T) rop.Result[T]) Chain[T] {
	return c.with(solo.Switch(c.ctx, c.res, onSuccess))
}

// ThenTry composes functions that return (T, error), like repo calls.
// Only a present value is handed on; Empty and Err pass through.
func (c Chain[T]) ThenTry(try func(ctx context.Context, t T) (T, error)) Chain[T] {
	return MapTo(c, try)
}

// Map transforms a present value with a function that cannot fail
func (c Chain[T]) Map(onSuccess func(ctx context.Context, t T) T) Chain[T] {
	return c.ThenTry(func(ctx context.Context, t T) (T, error) {
		return onSuccess(ctx, t), nil
	})
}

// MapTo switches the chain to another value type. Like ThenTry, it only
// calls onValue for a present value.
func MapTo[T, U any](c Chain[T], onValue func(ctx context.Context, t T) (U, error)) Chain[U] {
	return Chain[U]{ctx: c.ctx, res: solo.Switch(c.ctx, c.res, func(ctx context.Context, t T) rop.Result[U] {
		return rop.FromPair[U](onValue(ctx, t))
	})}
}

func (c Chain[T]) Recover(onError func(ctx context.Context, err error) (T, error)) Chain[T] {
	return c.with(solo.Recover(c.ctx, c.res, onError))
}

// RecoverUntil retries recovery until it succeeds, until is met or the
// chain's context is done.
func (c Chain[T]) RecoverUntil(onError func(ctx context.Context, err error) (T, error),
	until rop.Condition[T]) Chain[T] {
	return c.with(solo.RecoverUntil(c.ctx, c.res, onError, until))
}

func (c Chain[T]) Provide(supplier func(ctx context.Context) (T, error)) Chain[T] {
	return c.with(solo.Provide(c.ctx, c.res, supplier))
}

func (c Chain[T]) Failsafe(v T) Chain[T] {
	return c.with(c.res.Failsafe(v))
}

func (c Chain[T]) Filter(keep func(t T) bool) Chain[T] {
	return c.with(c.res.Filter(keep))
}

// Invoke observes the current result; failures of effect are logged and
// dropped.
func (c Chain[T]) Invoke(effect func(ctx context.Context, r rop.Result[T]) error) Chain[T] {
	return c.with(solo.Invoke(c.ctx, c.res, effect))
}

// Ensure triggers side effects per state without changing the result
func (c Chain[T]) Ensure(onPresent func(context.Context, T), onError func(context.Context, error)) Chain[T] {
	if c.res.IsError() {
		if onError != nil {
			onError(c.ctx, c.res.Error())
		}
		return c
	}

	if c.res.IsPresent() && onPresent != nil {
		onPresent(c.ctx, c.res.Get())
	}
	return c
}

// Or returns the first chain with a present value. Without one, the first
// error wins over an empty result.
func (c Chain[T]) Or(alternatives ...Chain[T]) Chain[T] {
	candidates := make([]Chain[T], 0, len(alternatives)+1)
	candidates = append(candidates, c)
	candidates = append(candidates, alternatives...)

	var failed *Chain[T]
	for i := range candidates {
		ch := candidates[i]
		if ch.res.IsPresent() {
			return ch
		}
		if ch.res.IsError() && failed == nil {
			failed = &candidates[i]
		}
	}

	if failed != nil {
		return *failed
	}
	return c
}

// Finally collapses the chain to a final value, delegating to solo.Finally
func (c Chain[T]) Finally(
	onValue func(context.Context, T) T,
	onEmpty func(context.Context) T,
	onError func(context.Context, error) T,
) T {
	return solo.Finally(c.ctx, c.res, onValue, onEmpty, onError)
}

func (c Chain[T]) PanicOrGet() T {
	return solo.PanicOrGet[T](c.res)
}
