// Package form provides the owning slots a rendering layer keeps validation
// results in: typed Field[V] slots that feed input events through a parser,
// and a Form that aggregates heterogeneous fields for display.
//
// Key operations:
// - NewField: create a named slot born Initial around a default
// - Field.Input/Reset: replace the slot's result from an input event
// - Field.Display/Message: read back what to render, including the raw
//   rejected input verbatim
// - Form.Valid/FirstMessage/Messages: whole-form display state
package form
