package connection

import (
	"errors"
	"fmt"
)

var (
	// ErrUnexpectedStatus is wrapped by *StatusError for any non-2xx answer.
	ErrUnexpectedStatus = errors.New("unexpected status")
	// ErrEmptyResponse is returned when the engine answers 2xx with no body.
	ErrEmptyResponse = errors.New("empty response")
)

// StatusError carries the status code and the start of the response body.
type StatusError struct {
	Code int
	Body string
}

// Error includes the status code and the body excerpt.
func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("docframe: %s %d", ErrUnexpectedStatus, e.Code)
	}
	return fmt.Sprintf("docframe: %s %d: %s", ErrUnexpectedStatus, e.Code, e.Body)
}

// Unwrap lets errors.Is match ErrUnexpectedStatus.
func (e *StatusError) Unwrap() error { return ErrUnexpectedStatus }
