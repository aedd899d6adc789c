package chain

import (
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/ib-77/valform/pkg/validation"
)

func parseInt(raw string) (int, error) {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.New("must be a whole number")
	}
	return n, nil
}

func TestStartAndResult(t *testing.T) {
	t.Parallel()
	c := Start(validation.Valid(5))

	out := c.Result()
	if !out.IsValid() || out.Value() != 5 {
		t.Fatalf("expected valid 5, got: valid=%v, val=%v", out.IsValid(), out.Value())
	}
}

func TestFromValue_IsInitial(t *testing.T) {
	t.Parallel()
	out := FromValue(7).Result()

	if !out.IsInitial() || out.Value() != 7 {
		t.Fatalf("expected initial 7, got: initial=%v, val=%v", out.IsInitial(), out.Value())
	}
}

func TestFromRaw(t *testing.T) {
	t.Parallel()

	if out := FromRaw("12", parseInt).Result(); !out.IsValid() || out.Value() != 12 {
		t.Fatalf("expected valid 12, got: valid=%v, val=%v", out.IsValid(), out.Value())
	}

	out := FromRaw("12x", parseInt).Result()
	msg, _ := out.Message()
	if !out.IsInvalid() || msg != "must be a whole number" || out.RawInput() != "12x" {
		t.Fatalf("expected invalid with raw '12x', got: invalid=%v, msg=%q, raw=%q", out.IsInvalid(), msg, out.RawInput())
	}
}

func TestThen_ShortCircuitOnInvalid(t *testing.T) {
	t.Parallel()
	c := Start(validation.Invalid[int]("boom", "in"))

	called := false
	out := Then(c, func(v int) validation.Result[int] {
		called = true
		return validation.Valid(v + 1)
	}).Result()

	msg, _ := out.Message()
	if !out.IsInvalid() || msg != "boom" {
		t.Fatalf("expected invalid 'boom', got: invalid=%v, msg=%q", out.IsInvalid(), msg)
	}
	if called {
		t.Fatalf("fn should not be called when the chain is already invalid")
	}
}

func TestThen_DependentValidation(t *testing.T) {
	t.Parallel()
	lessThanTen := func(v int) validation.Result[int] {
		if v < 10 {
			return validation.Valid(v)
		}
		return validation.Invalid[int]("must be less than 10", strconv.Itoa(v))
	}

	out := Then(FromRaw("7", parseInt), lessThanTen).Result()
	if !out.IsValid() || out.Value() != 7 {
		t.Fatalf("expected valid 7, got: valid=%v, val=%v", out.IsValid(), out.Value())
	}

	out = Then(FromRaw("12", parseInt), lessThanTen).Result()
	if !out.IsInvalid() || out.RawInput() != "12" {
		t.Fatalf("expected invalid with raw '12', got: invalid=%v, raw=%q", out.IsInvalid(), out.RawInput())
	}
}

func TestMap_TypeChange(t *testing.T) {
	t.Parallel()

	out := Map(Start(validation.Valid(3)), strconv.Itoa).Result()
	if !out.IsValid() || out.Value() != "3" {
		t.Fatalf("expected valid '3', got: valid=%v, val=%q", out.IsValid(), out.Value())
	}
}

func TestMapMessage(t *testing.T) {
	t.Parallel()

	out := Start(validation.Invalid[int]("bad", "x")).
		MapMessage(strings.ToUpper).
		Result()

	msg, _ := out.Message()
	if msg != "BAD" || out.RawInput() != "x" {
		t.Fatalf("expected 'BAD' with raw intact, got: msg=%q, raw=%q", msg, out.RawInput())
	}
}

func TestEnsure(t *testing.T) {
	t.Parallel()

	var sawValid int
	var sawMsg string
	Start(validation.Valid(5)).Ensure(func(v int) { sawValid = v }, nil)
	Start(validation.Invalid[int]("e", "x")).Ensure(nil, func(msg, raw string) { sawMsg = msg + ":" + raw })

	if sawValid != 5 {
		t.Fatalf("expected valid side effect with 5, got %v", sawValid)
	}
	if sawMsg != "e:x" {
		t.Fatalf("expected invalid side effect 'e:x', got %q", sawMsg)
	}
}

func TestFinally(t *testing.T) {
	t.Parallel()

	out := Finally(FromRaw("oops", parseInt),
		func(v int) string { return "initial" },
		func(v int) string { return "valid" },
		func(msg, raw string) string { return raw })

	if out != "oops" {
		t.Fatalf("expected raw input back, got %q", out)
	}
}
