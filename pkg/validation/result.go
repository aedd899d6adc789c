package validation

import (
	"time"

	"github.com/google/uuid"
)

// Result is the validity state of a single piece of user input. Exactly one
// of three variants is active: initial (not yet validated), valid, invalid.
// Invalid never carries a typed value; it keeps the error message and the raw
// text the user typed so the UI can redisplay it verbatim.
type Result[V any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     V
	message   string
	rawInput  string
	isValid   bool
	isInvalid bool
}

// Initial wraps a value that has not been validated yet, e.g. a form field's
// default at model initialization. No validation logic runs.
func Initial[V any](v V) Result[V] {
	return Result[V]{
		value:     v,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// Valid wraps a value that is asserted, without checking, to be known-good.
// Typical use: seeding an AndMap pipeline with a record constructor.
func Valid[V any](v V) Result[V] {
	return Result[V]{
		value:     v,
		isValid:   true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// Invalid wraps a failed validation: the error message and the raw input that
// was rejected. The raw input is never re-parsed implicitly.
func Invalid[V any](message, rawInput string) Result[V] {
	return Result[V]{
		message:   message,
		rawInput:  rawInput,
		isInvalid: true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// invalidFrom carries an invalid result across a type change. Invalid holds
// no value of the old type, so only the strings and identity move.
func invalidFrom[In, Out any](from Result[In]) Result[Out] {
	return Result[Out]{
		message:   from.message,
		rawInput:  from.rawInput,
		isInvalid: true,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

// retag rebuilds an initial or valid result around a transformed value,
// keeping the variant and identity of the source.
func retag[In, Out any](from Result[In], v Out) Result[Out] {
	return Result[Out]{
		value:     v,
		isValid:   from.isValid,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

// Value returns the wrapped value for initial and valid results, the zero
// value for invalid ones.
func (r Result[V]) Value() V {
	return r.value
}

// Message returns the error message and true when the result is invalid.
func (r Result[V]) Message() (string, bool) {
	return r.message, r.isInvalid
}

// RawInput returns the rejected input text; empty unless invalid.
func (r Result[V]) RawInput() string {
	return r.rawInput
}

func (r Result[V]) IsValid() bool {
	return r.isValid
}

func (r Result[V]) IsInvalid() bool {
	return r.isInvalid
}

func (r Result[V]) IsInitial() bool {
	return !r.isValid && !r.isInvalid
}

// WithDefault returns the wrapped value for initial and valid results and
// def for invalid ones.
func (r Result[V]) WithDefault(def V) V {
	if r.isInvalid {
		return def
	}
	return r.value
}

// ToString renders the result for display: fn(value) for initial and valid,
// the stored raw input verbatim for invalid. This is what lets a UI show
// exactly what the user typed even though it failed to parse.
func (r Result[V]) ToString(fn func(V) string) string {
	if r.isInvalid {
		return r.rawInput
	}
	return fn(r.value)
}

func (r Result[V]) CreatedAt() time.Time {
	return r.createdAt
}

func (r Result[V]) Id() uuid.UUID {
	return r.id
}
