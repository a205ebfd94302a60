package repository

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/ibradi0157/mon-blog/internal/legal"
)

// Filter selects pages. The zero value matches every page.
type Filter struct {
	Slug          legal.Slug
	PublishedOnly bool
}

func (f Filter) match(p *legal.Page) bool {
	if f.Slug != "" && p.Slug != f.Slug {
		return false
	}
	if f.PublishedOnly && !p.Published {
		return false
	}
	return true
}

// outsideCatalog reports a slug no stored page can have. Such filters are
// answered without a storage round trip, since raw path input may not even
// be a legal key or text value for the backend.
func (f Filter) outsideCatalog() bool {
	return f.Slug != "" && !f.Slug.Valid()
}

// Repository is the persistence collaborator of the legal page store.
// Implementations enforce slug uniqueness: saving a page whose slug already
// exists replaces that row and keeps its ID and CreatedAt.
type Repository interface {
	// FindOne returns legal.ErrNotFound when nothing matches.
	FindOne(ctx context.Context, f Filter) (*legal.Page, error)
	// FindAll returns matching pages ordered by slug ascending.
	FindAll(ctx context.Context, f Filter) ([]*legal.Page, error)
	// Save persists p and returns the stored row.
	Save(ctx context.Context, p *legal.Page) (*legal.Page, error)
}

// stamp fills system-managed fields before a write.
func stamp(p *legal.Page, now time.Time) {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	p.UpdatedAt = now
}

func sortBySlug(pages []*legal.Page) {
	sort.Slice(pages, func(i, j int) bool { return pages[i].Slug < pages[j].Slug })
}
