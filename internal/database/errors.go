package database

import "errors"

var (
	// ErrNotFound is returned when the requested record does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicateID is returned when an insert collides with an existing
	// primary key.
	ErrDuplicateID = errors.New("identifier already exists")
)
