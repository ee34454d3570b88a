package domain

import "errors"

var (
	ErrCardNotFound    = errors.New("card not found")
	ErrNotConfigured   = errors.New("store is not configured")
	ErrReorderInFlight = errors.New("a reorder is already in progress")
	ErrIndexOutOfRange = errors.New("position index out of range")
)

// MissingFieldError reports which required form field was absent.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return "missing required field: " + e.Field
}
