package types

import (
	"errors"
	"fmt"
)

// Messages carried by code-0 errors. Callers tell them apart by message only.
const (
	MessageNetworkError    = "Network error"
	MessageMissingError    = "Missing error"
	MessageUnexpectedError = "unexpected error"
)

// DomainError is the single normalised failure returned across the network
// boundary. Code mirrors the HTTP status when one was received, otherwise 0.
type DomainError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`

	cause error
}

// NewDomainError returns an error with the given status code and message.
func NewDomainError(code int, message string) *DomainError {
	return &DomainError{Code: code, Message: message}
}

// NetworkError reports that no HTTP response was obtained.
func NetworkError(cause error) *DomainError {
	return &DomainError{Message: MessageNetworkError, cause: cause}
}

// MissingError reports a failed response whose body could not be read as an
// error envelope.
func MissingError(status int) *DomainError {
	return &DomainError{Code: status, Message: MessageMissingError}
}

// UnexpectedError hides an internal failure behind a generic message. The
// cause stays reachable through errors.Unwrap for diagnostics.
func UnexpectedError(cause error) *DomainError {
	return &DomainError{Message: MessageUnexpectedError, cause: cause}
}

// InvalidInput rejects a request before it reaches the network.
func InvalidInput(format string, args ...any) *DomainError {
	return &DomainError{Message: fmt.Sprintf(format, args...)}
}

// Error implements error.
func (e *DomainError) Error() string {
	if e.Code == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s (code %d)", e.Message, e.Code)
}

// Unwrap returns the underlying cause, if any.
func (e *DomainError) Unwrap() error { return e.cause }

// Is matches another DomainError with the same code and message.
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return t.Code == e.Code && t.Message == e.Message
}

// IsNetwork reports whether the error stands for a transport failure.
func (e *DomainError) IsNetwork() bool {
	return e.Code == 0 && e.Message == MessageNetworkError
}

// AsDomainError extracts a *DomainError from err's chain.
func AsDomainError(err error) (*DomainError, bool) {
	var de *DomainError
	if errors.As(err, &de) {
		return de, true
	}
	return nil, false
}
