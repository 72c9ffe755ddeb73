// Package core holds per-call options for the context-aware combinators in
// package solo. Options travel on the context.Context so a single call site
// can adjust logging or evaluation without touching function signatures.
package core
