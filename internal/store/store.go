// Package store holds the errors shared by the document-store backends.
// The backends themselves live in store/memory and store/postgres; handlers
// depend on small consumer-side interfaces, not on a backend.
package store

import "errors"

var (
	// ErrDuplicateEmail is returned when a user registers with an email
	// that already exists.
	ErrDuplicateEmail = errors.New("email already exists")

	// ErrNotFound is returned when a record does not exist.
	ErrNotFound = errors.New("record not found")
)
