package predictform

import (
	"errors"
	"net/http"
)

type HTTPError interface {
	error
	StatusCode() int
}

// StatusError lets guards pick the status code a rejected request receives.
type StatusError struct {
	Code int
	Err  error
}

func (e StatusError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return http.StatusText(e.Code)
}

func (e StatusError) Unwrap() error { return e.Err }

func (e StatusError) StatusCode() int {
	if e.Code <= 0 {
		return http.StatusInternalServerError
	}
	return e.Code
}

func guardStatus(err error) int {
	code := http.StatusForbidden
	var httpErr HTTPError
	if errors.As(err, &httpErr) && httpErr != nil {
		code = httpErr.StatusCode()
		if code <= 0 {
			code = http.StatusForbidden
		}
	}
	return code
}

func writeGuardError(w http.ResponseWriter, err error) {
	code := guardStatus(err)
	http.Error(w, http.StatusText(code), code)
}
