package form

import (
	"errors"
	"strings"
)

// ErrorKind classifies the message currently shown by the form.
type ErrorKind string

const (
	ErrorKindNone            ErrorKind = ""
	ErrorKindValidation      ErrorKind = "validation"
	ErrorKindInvalidResponse ErrorKind = "invalid_response"
	ErrorKindNetwork         ErrorKind = "network"
	ErrorKindServer          ErrorKind = "server"
)

// User-facing messages.
const (
	MessageValidation      = "All fields are required and must be valid numbers."
	MessageInvalidResponse = "Invalid response from server"
	MessageNetwork         = "Network error. Please try again later."
)

// ErrUnknownField is returned by OnFieldChange for names outside the schema.
var ErrUnknownField = errors.New("form: unknown field")

// ValidationError lists the fields that failed to parse as a non-zero number.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "form: validation failed"
	}
	return "form: invalid fields: " + strings.Join(e.Fields, ", ")
}
