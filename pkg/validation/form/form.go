package form

import (
	"github.com/google/uuid"

	"github.com/ib-77/valform/pkg/validation"
)

// Field is a named model slot owning the latest validation result for one
// form input. It is born Initial around a default value; each input event
// replaces the result, never mutates it.
type Field[V any] struct {
	name    string
	id      uuid.UUID
	def     V
	parse   func(string) (V, error)
	display func(V) string
	result  validation.Result[V]
}

func NewField[V any](name string, def V,
	parse func(string) (V, error), display func(V) string) *Field[V] {

	return &Field[V]{
		name:    name,
		id:      uuid.New(),
		def:     def,
		parse:   parse,
		display: display,
		result:  validation.Initial(def),
	}
}

func (f *Field[V]) Name() string {
	return f.name
}

func (f *Field[V]) Id() uuid.UUID {
	return f.id
}

// Input feeds one raw input event through the field's parser and replaces
// the current result.
func (f *Field[V]) Input(raw string) {
	f.result = validation.Validate(raw, f.parse)
}

// Reset returns the field to Initial around its default value.
func (f *Field[V]) Reset() {
	f.result = validation.Initial(f.def)
}

// Result returns the field's current validation result.
func (f *Field[V]) Result() validation.Result[V] {
	return f.result
}

func (f *Field[V]) IsInitial() bool {
	return f.result.IsInitial()
}

func (f *Field[V]) IsValid() bool {
	return f.result.IsValid()
}

func (f *Field[V]) IsInvalid() bool {
	return f.result.IsInvalid()
}

func (f *Field[V]) Message() (string, bool) {
	return f.result.Message()
}

// Display returns the text to render for the field: the formatted value, or
// the raw rejected input exactly as the user typed it.
func (f *Field[V]) Display() string {
	return f.result.ToString(f.display)
}

// Member is what a Form holds: a named renderable field. *Field[V]
// implements it for any V.
type Member interface {
	validation.Renderer
	Name() string
}

// Form is an ordered list of heterogeneous fields. It tracks display state
// only; whole-form parsed records are built with Valid(ctor) + AndMap
// pipelines over the fields' results.
type Form struct {
	fields []Member
}

func New(fields ...Member) *Form {
	return &Form{fields: fields}
}

func (f *Form) Add(m Member) {
	f.fields = append(f.fields, m)
}

func (f *Form) Fields() []Member {
	return f.fields
}

// Valid reports whether every field is Valid. Initial fields count as not
// yet valid.
func (f *Form) Valid() bool {
	for _, m := range f.fields {
		if !m.IsValid() {
			return false
		}
	}
	return true
}

// FirstMessage scans fields left to right and returns the first invalid
// field's name and message. This mirrors the AndMap absorbing rule: the
// message a merge pipeline over the same fields would surface.
func (f *Form) FirstMessage() (field, message string, ok bool) {
	for _, m := range f.fields {
		if msg, invalid := m.Message(); invalid {
			return m.Name(), msg, true
		}
	}
	return "", "", false
}

// Messages returns one message per invalid field, keyed by field name.
func (f *Form) Messages() map[string]string {
	out := make(map[string]string)
	for _, m := range f.fields {
		if msg, invalid := m.Message(); invalid {
			out[m.Name()] = msg
		}
	}
	return out
}
