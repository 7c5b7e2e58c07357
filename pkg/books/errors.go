package books

import (
	"errors"
	"fmt"
)

// NotFoundError indicates the lookup returned no usable volume for an ISBN.
type NotFoundError struct {
	ISBN string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no book found for ISBN %s", e.ISBN)
}

// IsNotFound checks if an error is a lookup miss
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// NetworkError indicates a transport failure reaching the lookup service.
type NetworkError struct {
	URL     string // URL that failed
	Wrapped error  // Underlying error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error fetching %s: %v", e.URL, e.Wrapped)
}

func (e *NetworkError) Unwrap() error {
	return e.Wrapped
}

// StatusError indicates the lookup service answered with a non-OK status.
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d from %s", e.StatusCode, e.URL)
}

// ParseError indicates a response decoding or schema failure.
type ParseError struct {
	Message string // What failed to parse
	Wrapped error  // Underlying error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse %s: %v", e.Message, e.Wrapped)
}

func (e *ParseError) Unwrap() error {
	return e.Wrapped
}
