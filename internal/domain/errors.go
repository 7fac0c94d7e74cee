package domain

import "errors"

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")

	// ErrValidation indicates a malformed or incomplete payload. Nothing is
	// persisted when it is returned.
	ErrValidation = errors.New("validation failed")
)
