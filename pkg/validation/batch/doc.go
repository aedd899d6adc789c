// Package batch lifts the single-result combinators over slices, for forms
// with repeating fields that push many raw inputs through one parser.
// Everything stays synchronous and pure; only the orchestration over many
// values is provided here.
package batch
