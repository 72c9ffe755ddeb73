// Package solo contains context-aware, synchronous combinators over
// rop.Result[T]. They mirror the Result methods but take a context.Context
// first, honour cancellation between attempts, and log swallowed failures
// through the logger carried by package core.
//
// Highlights:
// - Succeed/Fail/Empty/From: construct Result[T]
// - Map/Switch: move from Result[In] to Result[Out]
// - Recover/RecoverUntil: turn errors back into values
// - Provide/Invoke: fill absent values, observe without changing
// - First: pick the first present candidate, lazily or eagerly
// - Finally: reduce to a concrete value via value/empty/error handlers
package solo
