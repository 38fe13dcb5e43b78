package gateway

import (
	"fmt"
	"net/http"
)

// Response is the envelope every service call returns once the server
// answered. Body is set only for successful statuses; ErrorBody holds the raw
// payload otherwise.
type Response[T any] struct {
	StatusCode int
	Body       *T
	ErrorBody  []byte
}

// Success reports whether the status is 2xx.
func (r *Response[T]) Success() bool {
	return r.StatusCode >= http.StatusOK && r.StatusCode < http.StatusMultipleChoices
}

// NoContent is the body type of endpoints that answer without a payload.
type NoContent struct{}

// TransportError means no HTTP response was obtained: connection failures,
// timeouts, cancelled contexts, aborted rate-limit waits.
type TransportError struct {
	Method string
	Path   string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Method, e.Path, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// DecodeError means a successful response carried a body that could not be
// decoded into the expected type.
type DecodeError struct {
	Method string
	Path   string
	Status int
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s %s: decode %d body: %v", e.Method, e.Path, e.Status, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }
