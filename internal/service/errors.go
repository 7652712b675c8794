package service

import "fmt"

// ConflictError is returned when a booking create or update fails the
// availability check. Reason carries the human-readable explanation that
// the API surfaces with a 409 status.
type ConflictError struct {
	Reason string
}

func (e *ConflictError) Error() string {
	return e.Reason
}

// ValidationError marks malformed client input, distinct from server-side
// failures so callers can correct the request.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func invalidField(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
