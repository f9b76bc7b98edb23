// Package predict talks to a remote price prediction endpoint. A request is a
// single JSON POST of feature name to number; a successful response is a JSON
// object carrying a numeric "price". Failures are classified so callers can
// tell a malformed success payload (ErrInvalidResponse) from a server-reported
// error (*StatusError) and from a transport failure (*TransportError).
package predict
