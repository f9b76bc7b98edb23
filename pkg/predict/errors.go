package predict

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrInvalidResponse is returned when a 2xx response does not carry a numeric
// price.
var ErrInvalidResponse = errors.New("predict: invalid response from server")

// StatusError reports a non-2xx response. Message holds the server-provided
// "error" string when the body carried one.
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("predict: server returned %d: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("predict: server returned %d %s", e.Code, http.StatusText(e.Code))
}

// StatusCode mirrors the HTTPError contract used by the HTTP component.
func (e *StatusError) StatusCode() int {
	if e.Code <= 0 {
		return http.StatusInternalServerError
	}
	return e.Code
}

// TransportError wraps failures that happen before a response is received.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("predict: transport: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// ServerMessage extracts the server-provided error string from err, if any.
func ServerMessage(err error) (string, bool) {
	var statusErr *StatusError
	if errors.As(err, &statusErr) && statusErr.Message != "" {
		return statusErr.Message, true
	}
	return "", false
}
