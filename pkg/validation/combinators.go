package validation

// Validate is the entry point that turns raw text into a Result: parse
// success wraps the parsed value as valid, parse failure wraps the error
// message together with the raw input as invalid.
func Validate[V any](rawInput string, parse func(string) (V, error)) Result[V] {
	v, err := parse(rawInput)
	if err != nil {
		return Invalid[V](err.Error(), rawInput)
	}
	return Valid(v)
}

// Map transforms the payload of an initial or valid result with fn. An
// invalid result passes through with its message and raw input unchanged.
// The active variant never changes.
func Map[In, Out any](r Result[In], fn func(In) Out) Result[Out] {
	if r.isInvalid {
		return invalidFrom[In, Out](r)
	}
	return retag(r, fn(r.value))
}

// MapMessage rewrites only the error message of an invalid result; initial
// and valid pass through unchanged. The raw input is untouched.
func MapMessage[V any](r Result[V], fn func(string) string) Result[V] {
	if !r.isInvalid {
		return r
	}
	out := r
	out.message = fn(r.message)
	return out
}

// AndThen chains a dependent validation. Initial and valid results are both
// advanced: fn runs on the payload and its result is returned as-is, whatever
// variant it is. An invalid result short-circuits and fn is never invoked.
func AndThen[In, Out any](r Result[In], fn func(In) Result[Out]) Result[Out] {
	if r.isInvalid {
		return invalidFrom[In, Out](r)
	}
	return fn(r.value)
}

// AndMap merges one field result into an accumulator carrying a partially
// applied constructor. The accumulator is inspected first: if it is already
// invalid, that invalid is returned and the field is never looked at, so the
// first invalid in a pipeline wins over everything applied after it. An
// initial or valid accumulator applies its function to the field via Map, so
// the merged result takes the field's variant. Initial is not sticky: a later
// valid field overwrites an initial accumulator.
func AndMap[A, B any](acc Result[func(A) B], field Result[A]) Result[B] {
	if acc.isInvalid {
		return invalidFrom[func(A) B, B](acc)
	}
	return Map(field, acc.value)
}

// Finally collapses a result into a plain value via one handler per variant.
func Finally[V, Out any](r Result[V],
	onInitial func(v V) Out,
	onValid func(v V) Out,
	onInvalid func(message, rawInput string) Out) Out {

	if r.isValid {
		return onValid(r.value)
	}
	if r.isInvalid {
		return onInvalid(r.message, r.rawInput)
	}
	return onInitial(r.value)
}
