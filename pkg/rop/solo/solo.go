package solo

import (
	"context"
	"errors"
	"log/slog"

	"github.com/ib-77/resultify/internal/try"
	"github.com/ib-77/resultify/pkg/rop"
	"github.com/ib-77/resultify/pkg/rop/core"
	"github.com/ib-77/resultify/pkg/rop/throwing"
)

func Succeed[T any](input T) rop.Result[T] {
	return rop.Of(input)
}

func Fail[T any](err error) rop.Result[T] {
	return rop.Fail[T](err)
}

func Empty[T any]() rop.Result[T] {
	return rop.Empty[T]()
}

// From calls fn with ctx. A context that is already done short-circuits to
// Err(ctx.Err()) without calling fn.
func From[T any](ctx context.Context, fn func(ctx context.Context) (T, error)) rop.Result[T] {
	if err := ctx.Err(); err != nil {
		return rop.Fail[T](err)
	}
	return rop.From(func() (T, error) { return fn(ctx) })
}

func Map[In, Out any](ctx context.Context,
	input rop.Result[In],
	onValue func(ctx context.Context, r In) (Out, error)) rop.Result[Out] {

	return rop.Map(input, func(r In) (Out, error) { return onValue(ctx, r) })
}

// Switch hands a present value to onSuccess, which builds the next result
// itself. Err and Empty are carried over to the new type.
func Switch[In, Out any](ctx context.Context,
	input rop.Result[In],
	onSuccess func(ctx context.Context, r In) rop.Result[Out]) rop.Result[Out] {

	if input.IsError() {
		return rop.Fail[Out](input.Error())
	}
	if !input.IsPresent() {
		return rop.Empty[Out]()
	}

	out, err := throwing.Function[In, rop.Result[Out]](func(r In) (rop.Result[Out], error) {
		return onSuccess(ctx, r), nil
	}).Apply(input.Get())
	if err != nil {
		return rop.Fail[Out](err)
	}
	return out
}

func Recover[T any](ctx context.Context,
	input rop.Result[T],
	onError func(ctx context.Context, err error) (T, error)) rop.Result[T] {

	return input.Recover(func(err error) (T, error) { return onError(ctx, err) })
}

// RecoverUntil behaves like Result.RecoverUntil and also stops once ctx is
// done. Cancellation is only observed between attempts. When it stops the
// loop, the last error is joined with ctx.Err().
func RecoverUntil[T any](ctx context.Context,
	input rop.Result[T],
	onError func(ctx context.Context, err error) (T, error),
	until rop.Condition[T]) rop.Result[T] {

	if !input.IsError() {
		return input
	}

	logger := core.GetLogger(ctx)
	attempt := 1
	result := Recover(ctx, input, onError)
	for result.IsError() {
		if until == nil || until.Met(result) {
			return result
		}
		if err := ctx.Err(); err != nil {
			logger.DebugContext(ctx, "recovery cancelled",
				slog.Int("attempts", attempt),
				slog.Any("error", result.Error()))
			return rop.Fail[T](errors.Join(append(rop.GetErrors(result.Error()), err)...))
		}

		attempt++
		logger.DebugContext(ctx, "retrying recovery",
			slog.Int("attempt", attempt),
			slog.Any("error", result.Error()))
		result = Recover(ctx, input, onError)
	}
	return result
}

func Provide[T any](ctx context.Context,
	input rop.Result[T],
	supplier func(ctx context.Context) (T, error)) rop.Result[T] {

	if input.IsPresent() {
		return input
	}
	return From(ctx, supplier)
}

// Invoke runs effect for observation only and returns input unchanged. A
// failing effect is logged at debug level and otherwise ignored.
func Invoke[T any](ctx context.Context,
	input rop.Result[T],
	effect func(ctx context.Context, r rop.Result[T]) error) rop.Result[T] {

	err := throwing.Consumer[rop.Result[T]](func(r rop.Result[T]) error {
		return effect(ctx, r)
	}).Try(input)
	if err != nil {
		core.GetLogger(ctx).DebugContext(ctx, "ignoring side effect failure",
			slog.String("result", input.String()),
			slog.Any("error", err))
	}
	return input
}

// First returns the first present result in call order, or Empty. By
// default it stops at the first present result. With
// core.WithProcessOptions(ctx, true) every candidate is called and the
// first present one still wins. Failed candidates are logged because their
// errors are not returned.
func First[T any](ctx context.Context, fns ...func(ctx context.Context) (T, error)) rop.Result[T] {
	evaluateAll := core.IsProcessRemainingEnabled(ctx, false)
	logger := core.GetLogger(ctx)

	found := rop.Empty[T]()
	for i, fn := range fns {
		r := From(ctx, fn)
		if r.IsError() {
			logger.DebugContext(ctx, "candidate failed",
				slog.Int("index", i),
				slog.Any("error", r.Error()))
		}

		if r.IsPresent() && !found.IsPresent() {
			found = r
			if !evaluateAll {
				break
			}
		}
	}
	return found
}

// Finally collapses an outcome into a plain value.
func Finally[In, Out any](ctx context.Context, input rop.Outcome[In],
	onValue func(ctx context.Context, r In) Out,
	onEmpty func(ctx context.Context) Out,
	onError func(ctx context.Context, err error) Out) Out {

	switch {
	case input.IsError():
		return onError(ctx, input.Error())
	case input.IsPresent():
		return onValue(ctx, input.Get())
	default:
		return onEmpty(ctx)
	}
}

// PanicOrGet is Result.PanicOrGet for any outcome.
func PanicOrGet[T any](input rop.Outcome[T]) T {
	if input.IsError() {
		try.Repanic(input.Error())
	}
	return input.Get()
}
