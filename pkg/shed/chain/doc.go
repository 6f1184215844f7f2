// Package chain provides a fluent wrapper around shed.Result[T, error]
// for building synchronous error-railway pipelines.
//
// It composes the package-level shed combinators behind a convenient
// Chain[T] type. This enables ergonomic pipelines without dealing
// directly with branching results at each step.
//
// Key operations:
// - Start/FromValue: begin a chain from a Result or a value
// - Then: switch to a new Result[U, error] via a function
// - ThenTry: call a function (U, error) and convert error to failure
// - Map: transform the successful value (T -> U)
// - Ensure/EnsureErr: run side effects without changing the result
// - Recover: replace a failure via a handler
// - Finally: collapse the chain into a final value via handlers
package chain
