// Package rules provides ready-made parsers for validation.Validate: string
// constraints, numeric parsing, format checks, and parser composition. Each
// parser rejects with a single fixed human-readable message.
package rules
