package repository

import (
	"context"
	"testing"

	"github.com/ibradi0157/mon-blog/internal/legal"
	"github.com/stretchr/testify/require"
)

// testRepository runs the behaviour every Repository must share.
func testRepository(t *testing.T, repo Repository) {
	t.Helper()
	ctx := context.Background()

	_, err := repo.FindOne(ctx, Filter{Slug: legal.SlugPrivacy})
	require.ErrorIs(t, err, legal.ErrNotFound)

	all, err := repo.FindAll(ctx, Filter{})
	require.NoError(t, err)
	require.Empty(t, all)

	terms, err := repo.Save(ctx, legal.New(legal.SlugTerms, legal.Content{Title: "Terms", Body: "t"}))
	require.NoError(t, err)
	require.NotEmpty(t, terms.ID)
	require.False(t, terms.CreatedAt.IsZero())
	require.False(t, terms.UpdatedAt.Before(terms.CreatedAt))

	privacy, err := repo.Save(ctx, legal.New(legal.SlugPrivacy, legal.Content{Title: "Privacy", Body: "p"}))
	require.NoError(t, err)

	got, err := repo.FindOne(ctx, Filter{Slug: legal.SlugPrivacy})
	require.NoError(t, err)
	require.Equal(t, privacy.ID, got.ID)
	require.Equal(t, "Privacy", got.Title)
	require.False(t, got.Published)

	// ordered by slug, not by insertion
	all, err = repo.FindAll(ctx, Filter{})
	require.NoError(t, err)
	require.Len(t, all, 2)
	require.Equal(t, legal.SlugPrivacy, all[0].Slug)
	require.Equal(t, legal.SlugTerms, all[1].Slug)

	// saving the same slug again replaces the row but keeps identity
	got.Title = "Privacy v2"
	got.Published = true
	updated, err := repo.Save(ctx, got)
	require.NoError(t, err)
	require.Equal(t, privacy.ID, updated.ID)
	require.True(t, updated.CreatedAt.Equal(privacy.CreatedAt))
	require.Equal(t, "Privacy v2", updated.Title)

	dup, err := repo.Save(ctx, legal.New(legal.SlugPrivacy, legal.Content{Title: "Privacy v3"}))
	require.NoError(t, err)
	require.Equal(t, privacy.ID, dup.ID)

	all, err = repo.FindAll(ctx, Filter{})
	require.NoError(t, err)
	require.Len(t, all, 2)

	published, err := repo.FindAll(ctx, Filter{PublishedOnly: true})
	require.NoError(t, err)
	require.Empty(t, published, "a fresh save of a draft resets the flag it carries")

	_, err = repo.Save(ctx, &legal.Page{Slug: legal.SlugTerms, Title: "Terms", Published: true})
	require.NoError(t, err)
	published, err = repo.FindAll(ctx, Filter{PublishedOnly: true})
	require.NoError(t, err)
	require.Len(t, published, 1)
	require.Equal(t, legal.SlugTerms, published[0].Slug)

	_, err = repo.FindOne(ctx, Filter{Slug: legal.SlugPrivacy, PublishedOnly: true})
	require.ErrorIs(t, err, legal.ErrNotFound)

	first, err := repo.FindOne(ctx, Filter{PublishedOnly: true})
	require.NoError(t, err)
	require.Equal(t, legal.SlugTerms, first.Slug)

	for _, raw := range []legal.Slug{"unknown", "\xff", "terms\x00", "../terms", "Terms"} {
		_, err = repo.FindOne(ctx, Filter{Slug: raw})
		require.ErrorIs(t, err, legal.ErrNotFound, "slug %q", raw)
		_, err = repo.FindOne(ctx, Filter{Slug: raw, PublishedOnly: true})
		require.ErrorIs(t, err, legal.ErrNotFound, "slug %q", raw)
		matched, err := repo.FindAll(ctx, Filter{Slug: raw})
		require.NoError(t, err, "slug %q", raw)
		require.Empty(t, matched, "slug %q", raw)
	}
}
