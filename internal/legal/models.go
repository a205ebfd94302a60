package legal

import "time"

// Slug identifies one page of the fixed legal catalog.
type Slug string

const (
	SlugCookies Slug = "cookies"
	SlugPrivacy Slug = "privacy"
	SlugTerms   Slug = "terms"
)

// catalog is kept in ascending order.
var catalog = []Slug{SlugCookies, SlugPrivacy, SlugTerms}

// Slugs returns every allowed slug, ascending.
func Slugs() []Slug {
	out := make([]Slug, len(catalog))
	copy(out, catalog)
	return out
}

// Valid reports whether s belongs to the catalog.
func (s Slug) Valid() bool {
	for _, c := range catalog {
		if c == s {
			return true
		}
	}
	return false
}

func (s Slug) String() string { return string(s) }

// Page is a singleton legal document (privacy policy, terms, ...).
// There is at most one page per slug.
type Page struct {
	ID        string    `json:"id" bson:"id"`
	Slug      Slug      `json:"slug" bson:"slug"`
	Title     string    `json:"title" bson:"title"`
	Body      string    `json:"body" bson:"body"`
	Published bool      `json:"published" bson:"published"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}

// Content is the editable part of a page.
type Content struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// New returns an unsaved draft page for slug.
func New(slug Slug, c Content) *Page {
	return &Page{Slug: slug, Title: c.Title, Body: c.Body}
}

// Clone returns a copy that shares nothing with p.
func (p *Page) Clone() *Page {
	if p == nil {
		return nil
	}
	cp := *p
	return &cp
}
