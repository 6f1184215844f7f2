package chain

import (
	"github.com/ib-77/shed/pkg/shed"
)

// Chain wraps a shed.Result to enable fluent chaining
type Chain[T any] struct {
	result shed.Result[T, error]
}

// Start creates a new chain from a shed.Result
func Start[T any](result shed.Result[T, error]) *Chain[T] {
	return &Chain[T]{
		result: result,
	}
}

// FromValue creates a new chain from a successful value
func FromValue[T any](value T) *Chain[T] {
	return &Chain[T]{
		result: shed.Ok[error](value),
	}
}

// Result returns the underlying shed.Result
func (c *Chain[T]) Result() shed.Result[T, error] {
	return c.result
}

// Then chains a function that returns shed.Result[U, error]
func Then[T, U any](c *Chain[T], onOk func(T) shed.Result[U, error]) *Chain[U] {
	return &Chain[U]{
		result: shed.AndThenResult(c.result, onOk),
	}
}

// ThenTry chains a function that returns (U, error)
func ThenTry[T, U any](c *Chain[T], tryOnOk func(T) (U, error)) *Chain[U] {
	return &Chain[U]{
		result: shed.AndThenResult(c.result, shed.ToResult(tryOnOk)),
	}
}

// Map chains a pure transformation function
func Map[T, U any](c *Chain[T], onOk func(T) U) *Chain[U] {
	return &Chain[U]{
		result: shed.MapResult(c.result, onOk),
	}
}

// Ensure performs a side effect on success without changing the result
func (c *Chain[T]) Ensure(onOk func(T)) *Chain[T] {
	return &Chain[T]{
		result: c.result.Inspect(onOk),
	}
}

// EnsureErr performs a side effect on failure without changing the result
func (c *Chain[T]) EnsureErr(onErr func(error)) *Chain[T] {
	return &Chain[T]{
		result: c.result.InspectErr(onErr),
	}
}

// Recover replaces a failed result with the one produced by onErr
func (c *Chain[T]) Recover(onErr func(error) shed.Result[T, error]) *Chain[T] {
	return &Chain[T]{
		result: shed.OrElseResult(c.result, onErr),
	}
}

// Finally collapses the chain into a final value using both handlers
func Finally[T, U any](c *Chain[T], onOk func(T) U, onErr func(error) U) U {
	return shed.FoldResult(c.result, onOk, onErr)
}
