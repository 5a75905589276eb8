package storage

import "errors"

var (
	ErrNotFound    = errors.New("record not found")
	ErrInvalidSort = errors.New("invalid sort property")
	ErrConflict    = errors.New("concurrent write conflict")
)
