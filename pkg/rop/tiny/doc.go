// Package tiny provides a minimal fluent Chain[T] for synchronous
// composition of Result[T] values.
//
// A Chain carries the context handed to every callback:
// - Start/FromValue/From: create a Chain
// - Then/ThenTry/Map: compose result-returning, error-returning or pure functions
// - MapTo: switch the chain to a new value type
// - Recover/RecoverUntil/Provide/Failsafe/Filter: the Result combinators
// - Invoke/Ensure: trigger side effects without changing the result
// - Or: pick the first chain holding a value
// - Finally: reduce to a concrete value via handlers
//
// Tiny is ideal for small services or tests where lightweight synchronous
// chaining improves readability.
package tiny
