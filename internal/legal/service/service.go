package service

import (
	"context"
	"errors"

	"github.com/ibradi0157/mon-blog/internal/legal"
	"github.com/ibradi0157/mon-blog/internal/legal/repository"
)

// Service defines the legal page operations used by the handler layer.
// The "Public" variants only ever expose published pages.
type Service interface {
	GetAll(ctx context.Context) ([]*legal.Page, error)
	GetBySlug(ctx context.Context, slug legal.Slug) (*legal.Page, error)
	GetPublicAll(ctx context.Context) ([]*legal.Page, error)
	GetPublicBySlug(ctx context.Context, slug legal.Slug) (*legal.Page, error)
	Upsert(ctx context.Context, slug legal.Slug, c legal.Content) (*legal.Page, error)
	SetPublished(ctx context.Context, slug legal.Slug, published bool) (*legal.Page, error)
}

// Store implements Service on top of a Repository. It holds no state of its
// own: every call goes to storage, and concurrent writers to the same slug
// race with the last one winning.
type Store struct {
	repo repository.Repository
}

var _ Service = (*Store)(nil)

func New(repo repository.Repository) *Store {
	return &Store{repo: repo}
}

func (s *Store) GetAll(ctx context.Context) ([]*legal.Page, error) {
	return s.repo.FindAll(ctx, repository.Filter{})
}

func (s *Store) GetBySlug(ctx context.Context, slug legal.Slug) (*legal.Page, error) {
	return s.findOne(ctx, repository.Filter{Slug: slug})
}

func (s *Store) GetPublicAll(ctx context.Context) ([]*legal.Page, error) {
	return s.repo.FindAll(ctx, repository.Filter{PublishedOnly: true})
}

// GetPublicBySlug reports a draft exactly like a missing page.
func (s *Store) GetPublicBySlug(ctx context.Context, slug legal.Slug) (*legal.Page, error) {
	return s.findOne(ctx, repository.Filter{Slug: slug, PublishedOnly: true})
}

// Upsert creates a draft on first use of slug, otherwise replaces title and
// body. Published and CreatedAt are left alone.
func (s *Store) Upsert(ctx context.Context, slug legal.Slug, c legal.Content) (*legal.Page, error) {
	p, err := s.repo.FindOne(ctx, repository.Filter{Slug: slug})
	switch {
	case errors.Is(err, legal.ErrNotFound):
		p = legal.New(slug, c)
	case err != nil:
		return nil, err
	default:
		p.Title = c.Title
		p.Body = c.Body
	}
	return s.repo.Save(ctx, p)
}

// SetPublished always saves, even when the flag does not change.
func (s *Store) SetPublished(ctx context.Context, slug legal.Slug, published bool) (*legal.Page, error) {
	p, err := s.findOne(ctx, repository.Filter{Slug: slug})
	if err != nil {
		return nil, err
	}
	p.Published = published
	return s.repo.Save(ctx, p)
}

func (s *Store) findOne(ctx context.Context, f repository.Filter) (*legal.Page, error) {
	p, err := s.repo.FindOne(ctx, f)
	if errors.Is(err, legal.ErrNotFound) {
		return nil, &legal.NotFoundError{Slug: f.Slug}
	}
	return p, err
}
