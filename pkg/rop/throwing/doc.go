// Package throwing adapts fallible callables into shapes that never panic.
//
// A callable fails when it returns a non-nil error or when it panics. The
// adapters here fold both into a single error return so combinators in
// package rop can store the failure instead of unwinding the caller:
// - Function: T -> (R, error)
// - Supplier: () -> (T, error)
// - Consumer: T -> error, with a best-effort Accept that drops failures
//
// Unchecked goes the other way and turns a returned error into a panic.
package throwing
