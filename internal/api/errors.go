package api

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrUnauthorized marks a 401 from any endpoint. Callers must tear the
// session down before retrying; the client itself never retries.
var ErrUnauthorized = errors.New("unauthorized")

// StatusError is a non-2xx answer that did arrive. Message carries the
// server-supplied text verbatim when one was present.
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("server rejected request (%d): %s", e.Code, e.Message)
	}
	return fmt.Sprintf("server rejected request (%d)", e.Code)
}

func (e *StatusError) Unwrap() error {
	if e.Code == http.StatusUnauthorized {
		return ErrUnauthorized
	}
	return nil
}

// TransportError means no response was received at all.
type TransportError struct {
	URL string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("request to %s failed: %v", e.URL, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// Unauthorized reports whether err is (or wraps) a 401.
func Unauthorized(err error) bool { return errors.Is(err, ErrUnauthorized) }
