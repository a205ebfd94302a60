package legal

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when no page matches a lookup.
	ErrNotFound = errors.New("legal page not found")
	// ErrInvalidSlug is returned by ParseSlug for values outside the catalog.
	ErrInvalidSlug = errors.New("invalid legal page slug")
)

// NotFoundError carries the slug of a failed lookup. It matches ErrNotFound
// with errors.Is.
type NotFoundError struct {
	Slug Slug
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("legal page %q not found", string(e.Slug))
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// ValidationError describes the first invalid field of a Content.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Reason
}
