package model

import "errors"

// Sentinel errors for data-integrity conditions. Store and snapshot
// implementations wrap these with %w so callers can match with errors.Is.
var (
	// ErrNotFound: a lookup by key or owner matched nothing.
	ErrNotFound = errors.New("not found")
	// ErrDuplicate: an insert collided with an existing identifier or owner key.
	ErrDuplicate = errors.New("duplicate key")
	// ErrMissingParent: an insert referenced a parent record that does not exist.
	ErrMissingParent = errors.New("missing parent record")
	// ErrIntegrity: a defensive check found stored data violating an invariant.
	ErrIntegrity = errors.New("integrity violation")
	// ErrParse: persisted diary data is malformed or truncated.
	ErrParse = errors.New("malformed diary data")
	// ErrInvalidInput: degenerate input a computation cannot meaningfully process.
	ErrInvalidInput = errors.New("invalid input")
	// ErrValidation: caller-supplied query parameters failed validation.
	ErrValidation = errors.New("validation error")
)
