package validation

// State exposes the variant of a result without its payload type.
type State interface {
	// IsInitial returns true if no validation has been attempted
	IsInitial() bool
	// IsValid returns true if validation succeeded
	IsValid() bool
	// IsInvalid returns true if validation failed
	IsInvalid() bool
	// Message returns the error message and true when invalid
	Message() (string, bool)
}

// Renderer extends State with the display text for the current value. It is
// the type-erased surface a form holds heterogeneous fields through.
type Renderer interface {
	State
	// Display returns the text to render: the formatted value, or the raw
	// rejected input when invalid
	Display() string
}
