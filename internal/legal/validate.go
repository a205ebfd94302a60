package legal

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

const (
	maxTitleLen = 200
	maxBodyLen  = 200_000
)

// ParseSlug normalises s and checks it against the catalog.
func ParseSlug(s string) (Slug, error) {
	slug := Slug(strings.ToLower(strings.TrimSpace(s)))
	if !slug.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidSlug, s)
	}
	return slug, nil
}

// Normalize trims surrounding whitespace from the title. The body is stored
// as given.
func (c Content) Normalize() Content {
	c.Title = strings.TrimSpace(c.Title)
	return c
}

// Validate checks the content and returns a *ValidationError for the first
// problem found.
func (c Content) Validate() error {
	title := strings.TrimSpace(c.Title)
	if title == "" {
		return &ValidationError{Field: "title", Reason: "is required"}
	}
	if utf8.RuneCountInString(title) > maxTitleLen {
		return &ValidationError{Field: "title", Reason: fmt.Sprintf("is too long (max %d characters)", maxTitleLen)}
	}
	if utf8.RuneCountInString(c.Body) > maxBodyLen {
		return &ValidationError{Field: "body", Reason: fmt.Sprintf("is too long (max %d characters)", maxBodyLen)}
	}
	return nil
}
