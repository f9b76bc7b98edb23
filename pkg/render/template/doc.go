// Package template defines the engine contract renderers use to execute
// templates, so HTML output can be produced by any engine that satisfies it.
package template
