package chain

import (
	"github.com/ib-77/valform/pkg/validation"
)

// Chain wraps a validation.Result to enable fluent composition of dependent
// validations on a single field
type Chain[V any] struct {
	result validation.Result[V]
}

// Start creates a new chain from a validation.Result
func Start[V any](result validation.Result[V]) *Chain[V] {
	return &Chain[V]{
		result: result,
	}
}

// FromValue creates a new chain from an unvalidated default value, the state
// a form slot is born in
func FromValue[V any](value V) *Chain[V] {
	return &Chain[V]{
		result: validation.Initial(value),
	}
}

// FromRaw creates a new chain by parsing raw input
func FromRaw[V any](rawInput string, parse func(string) (V, error)) *Chain[V] {
	return &Chain[V]{
		result: validation.Validate(rawInput, parse),
	}
}

// Result returns the underlying validation.Result
func (c *Chain[V]) Result() validation.Result[V] {
	return c.result
}

// Then chains a function that returns validation.Result[U]
func Then[T, U any](c *Chain[T], fn func(T) validation.Result[U]) *Chain[U] {
	return &Chain[U]{
		result: validation.AndThen(c.result, fn),
	}
}

// Map chains a pure transformation function
func Map[T, U any](c *Chain[T], fn func(T) U) *Chain[U] {
	return &Chain[U]{
		result: validation.Map(c.result, fn),
	}
}

// MapMessage rewrites the error message when the result is invalid
func (c *Chain[V]) MapMessage(fn func(string) string) *Chain[V] {
	return &Chain[V]{
		result: validation.MapMessage(c.result, fn),
	}
}

// Ensure performs side effects without changing the result
func (c *Chain[V]) Ensure(onValid func(V), onInvalid func(message, rawInput string)) *Chain[V] {
	if c.result.IsValid() {
		if onValid != nil {
			onValid(c.result.Value())
		}
		return c
	}
	if c.result.IsInvalid() {
		if onInvalid != nil {
			msg, _ := c.result.Message()
			onInvalid(msg, c.result.RawInput())
		}
	}
	return c
}

// Finally collapses the chain into a final value using validation.Finally
func Finally[T, U any](c *Chain[T], onInitial func(T) U, onValid func(T) U, onInvalid func(message, rawInput string) U) U {
	return validation.Finally(c.result, onInitial, onValid, onInvalid)
}
