// Package chain provides a fluent wrapper around validation.Result[V]
// for building single-field pipelines of dependent validations.
//
// It composes the package validation combinators behind a convenient
// Chain[V] type. This enables ergonomic pipelines without dealing directly
// with branching results at each step.
//
// Key operations:
// - Start/FromValue/FromRaw: begin a chain from a result, a default, or raw input
// - Then: chain a dependent validation (V -> Result[U])
// - Map: transform the carried value (T -> U)
// - MapMessage: rewrite the error message without touching validity
// - Ensure: run side effects without changing the result
// - Finally: collapse the chain into a final value via handlers
package chain
