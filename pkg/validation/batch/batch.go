package batch

import (
	"github.com/ib-77/valform/pkg/validation"
)

// Validate runs one parser over many raw inputs, one result per input.
// Typical use: repeating fields such as a list of invitee emails.
func Validate[V any](raws []string, parse func(string) (V, error)) []validation.Result[V] {
	out := make([]validation.Result[V], len(raws))
	for i, raw := range raws {
		out[i] = validation.Validate(raw, parse)
	}
	return out
}

// Map lifts validation.Map over a slice of results.
func Map[In, Out any](rs []validation.Result[In], fn func(In) Out) []validation.Result[Out] {
	out := make([]validation.Result[Out], len(rs))
	for i, r := range rs {
		out[i] = validation.Map(r, fn)
	}
	return out
}

// Finally collapses every result via one handler per variant.
func Finally[V, Out any](rs []validation.Result[V],
	onInitial func(v V) Out,
	onValid func(v V) Out,
	onInvalid func(message, rawInput string) Out) []Out {

	out := make([]Out, len(rs))
	for i, r := range rs {
		out[i] = validation.Finally(r, onInitial, onValid, onInvalid)
	}
	return out
}

// Partition splits results into the valid values and the remaining results,
// preserving order. Initial results land on the invalid side since their
// values were never validated.
func Partition[V any](rs []validation.Result[V]) (valid []V, rest []validation.Result[V]) {
	for _, r := range rs {
		if r.IsValid() {
			valid = append(valid, r.Value())
		} else {
			rest = append(rest, r)
		}
	}
	return valid, rest
}
