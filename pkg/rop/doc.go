// Package rop defines Result[T], a value that is in exactly one of three
// states: Ok (a value is present), Empty (no value and no error) or Err (an
// error was captured while producing the value).
//
// Results are immutable. Every combinator returns a new Result, or the
// receiver itself when it has nothing to do:
// - Of/FromPair/Fail/Empty/From: construct a Result
// - Map: transform a value, capturing failures as Err
// - Recover/RecoverUntil: turn Err back into a value, optionally repeating
//   until a Condition is met
// - Provide/Failsafe: fill in an absent value lazily or with a constant
// - Filter: demote a present value that does not match to Empty
// - IfPresent/IfEmpty/IfError/InvokeBestEffort: observe without changing
// - First/List: pick the first present result from a list of callables
//
// A callable fails when it returns an error or when it panics. Both end up in
// the Err state; combinators never re-raise. PanicOrGet is the explicit way
// back to a panic.
package rop
