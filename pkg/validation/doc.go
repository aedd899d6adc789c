// Package validation models the validity state of a single piece of user
// input as an immutable tri-state Result[V] (initial, valid, invalid) and
// provides the combinator algebra for transforming and composing results.
//
// Highlights:
// - Initial/Valid/Invalid: construct Result[V]
// - Validate: parse raw input into valid or invalid
// - Map/MapMessage: transform the value or the error message
// - AndThen: chain dependent validations with invalid short-circuiting
// - AndMap: merge field results into a whole-form result; the first invalid
//   in the pipeline is absorbing, initial is overwritten by later fields
// - WithDefault/Message/ToString/Finally: read the result out for rendering
//
// Every operation is pure: results are never mutated, each call returns a
// new value. There is no I/O and no concurrency.
package validation
