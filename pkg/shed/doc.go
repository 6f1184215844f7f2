// Package shed provides generic Option[T] and Result[T, E] value
// containers with Rust-flavored combinators.
//
// Core surface:
// - Some/None, Ok/Err: construct containers; FromOk/FromPtr bridge Go idioms
// - IsSome/IsNone, IsOk/IsErr, Get: discriminate and destructure variants
// - MapOption/MapResult/MapErr, AndThenOption/AndThenResult: transform and chain
// - UnwrapOr/UnwrapOrElse, Unwrap/Expect: extract values (Unwrap panics on the
//   negative variant)
// - OkOr, Ok()/Err(): convert between the two container kinds
//
// Adapters:
// - ToResult/ToOption: lift (T, error) functions into container-returning ones
// - CatchResult/CatchOption: run a panicking computation, capturing declared
//   error kinds
//
// Shortcut protocol:
// - ResultShortcut/OptionShortcut mark a computation shortcut-aware
// - inside it, Q on a container yields the value or makes the negative
//   container the computation's result immediately
//
// Containers are immutable value types; combinators never mutate their
// inputs, and == gives structural equality for comparable payloads.
package shed
