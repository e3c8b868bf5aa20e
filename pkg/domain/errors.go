package domain

import "errors"

// Error categories shared by every record type. Concrete errors wrap one of these
// so transport code can classify them with errors.Is.
var (
	// ErrNotFound is returned when a requested record does not exist.
	ErrNotFound = errors.New("resource not found")
	// ErrAlreadyExists is returned when a store rejects a duplicate key.
	ErrAlreadyExists = errors.New("resource already exists")
	// ErrValidation is returned when caller input is malformed or out of range.
	ErrValidation = errors.New("validation error")
	// ErrUnauthorized is returned when the caller presented no valid credentials.
	ErrUnauthorized = errors.New("unauthorized")
)
