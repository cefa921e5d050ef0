package newsapi

import (
	"errors"
	"fmt"
)

// ErrMissingKey guards against a fetch issued without an API key. The
// config layer surfaces its own error before a request gets this far.
var ErrMissingKey = errors.New("API key required")

// NetworkError is a transport-level failure: timeout, refused connection,
// DNS. Recoverable by retrying, but the client never retries on its own.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// APIError is a logical failure reported by the upstream source: an error
// status in the response body or a non-2xx without one. The upstream message
// is carried verbatim.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = "unknown error"
	}
	if e.Code != "" {
		return fmt.Sprintf("API error (%s): %s", e.Code, msg)
	}
	return fmt.Sprintf("API error: %s", msg)
}

// ParseError means the payload shape or a timestamp was malformed. The whole
// fetch is abandoned; there is no partial result past this boundary.
type ParseError struct {
	Field string
	Err   error
}

func (e *ParseError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("parsing %s: %v", e.Field, e.Err)
	}
	return fmt.Sprintf("parsing response: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
