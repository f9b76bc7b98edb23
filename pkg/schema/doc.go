// Package schema resolves the FormModel a prediction form is built from. A
// schema can come from a built-in preset, a YAML/JSON file, or the request
// body of an OpenAPI operation. Every path sanitizes display text, fills
// default labels, and validates the result before handing it out.
package schema
