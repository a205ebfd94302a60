package service

import (
	"context"
	"errors"

	"github.com/ibradi0157/mon-blog/internal/legal"
)

// DefaultTitles are the draft titles used when seeding an empty catalog.
var DefaultTitles = map[legal.Slug]string{
	legal.SlugCookies: "Cookie Policy",
	legal.SlugPrivacy: "Privacy Policy",
	legal.SlugTerms:   "Terms of Use",
}

// Seed creates an unpublished draft for every catalog slug that has no page
// yet and returns the slugs it created. Existing pages are never touched.
func Seed(ctx context.Context, svc Service) ([]legal.Slug, error) {
	var created []legal.Slug
	for _, slug := range legal.Slugs() {
		_, err := svc.GetBySlug(ctx, slug)
		if err == nil {
			continue
		}
		if !errors.Is(err, legal.ErrNotFound) {
			return created, err
		}
		title := DefaultTitles[slug]
		if title == "" {
			title = slug.String()
		}
		if _, err := svc.Upsert(ctx, slug, legal.Content{Title: title}); err != nil {
			return created, err
		}
		created = append(created, slug)
	}
	return created, nil
}
