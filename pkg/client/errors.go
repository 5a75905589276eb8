package client

import (
	"errors"
	"fmt"
)

var (
	ErrRequestFailed = errors.New("request failed")
	ErrMissingID     = errors.New("record has no id")
)

// RequestError is returned for every non-2xx response.
type RequestError struct {
	Method     string
	URL        string
	StatusCode int
	Status     string
	Body       []byte
}

// Error returns the response status line, e.g. "409 Conflict".
func (e *RequestError) Error() string {
	if e.Status != "" {
		return e.Status
	}
	return fmt.Sprintf("status %d", e.StatusCode)
}

func (e *RequestError) Unwrap() error {
	return ErrRequestFailed
}
