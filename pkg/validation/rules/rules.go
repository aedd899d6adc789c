package rules

import (
	"errors"
	"fmt"
	"net/mail"
	"regexp"
	"strconv"
	"strings"
)

// Parser turns raw input text into a typed value or a single error message.
// It is the shape validation.Validate consumes.
type Parser[V any] func(rawInput string) (V, error)

// Required accepts any string that is non-empty after trimming whitespace.
// The original string is returned untrimmed.
func Required() Parser[string] {
	return func(raw string) (string, error) {
		if strings.TrimSpace(raw) == "" {
			return "", errors.New("field is required")
		}
		return raw, nil
	}
}

// MinLen accepts strings of at least min bytes.
func MinLen(min int) Parser[string] {
	return func(raw string) (string, error) {
		if len(raw) < min {
			return "", fmt.Errorf("must be at least %d characters long", min)
		}
		return raw, nil
	}
}

// MaxLen accepts strings of at most max bytes.
func MaxLen(max int) Parser[string] {
	return func(raw string) (string, error) {
		if len(raw) > max {
			return "", fmt.Errorf("must be at most %d characters long", max)
		}
		return raw, nil
	}
}

// Match accepts strings matching re, rejecting with msg.
func Match(re *regexp.Regexp, msg string) Parser[string] {
	return func(raw string) (string, error) {
		if !re.MatchString(raw) {
			return "", errors.New(msg)
		}
		return raw, nil
	}
}

// OneOf accepts only the listed choices.
func OneOf(choices ...string) Parser[string] {
	return func(raw string) (string, error) {
		for _, c := range choices {
			if raw == c {
				return raw, nil
			}
		}
		return "", fmt.Errorf("must be one of: %s", strings.Join(choices, ", "))
	}
}

// Int parses a base-10 integer.
func Int() Parser[int] {
	return func(raw string) (int, error) {
		n, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			return 0, errors.New("must be a whole number")
		}
		return n, nil
	}
}

// IntBetween parses a base-10 integer within [lo, hi].
func IntBetween(lo, hi int) Parser[int] {
	parse := Int()
	return func(raw string) (int, error) {
		n, err := parse(raw)
		if err != nil {
			return 0, err
		}
		if n < lo || n > hi {
			return 0, fmt.Errorf("must be between %d and %d", lo, hi)
		}
		return n, nil
	}
}

// Float parses a decimal number.
func Float() Parser[float64] {
	return func(raw string) (float64, error) {
		f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return 0, errors.New("must be a number")
		}
		return f, nil
	}
}

// Email accepts a single RFC 5322 address and returns its bare address part.
func Email() Parser[string] {
	return func(raw string) (string, error) {
		addr, err := mail.ParseAddress(strings.TrimSpace(raw))
		if err != nil {
			return "", errors.New("must be a valid email address")
		}
		return addr.Address, nil
	}
}

// Trim runs next on the whitespace-trimmed input.
func Trim[V any](next Parser[V]) Parser[V] {
	return func(raw string) (V, error) {
		return next(strings.TrimSpace(raw))
	}
}

// Compose feeds the output of first into then, failing with whichever
// message rejects first.
func Compose[V any](first Parser[string], then Parser[V]) Parser[V] {
	return func(raw string) (V, error) {
		s, err := first(raw)
		if err != nil {
			var zero V
			return zero, err
		}
		return then(s)
	}
}
