package twitters

import "errors"

var (
	ErrNotFound     = errors.New("twitter not found")
	ErrInvalid      = errors.New("invalid twitter")
	ErrInvalidMovie = errors.New("referenced movie does not exist")
)
