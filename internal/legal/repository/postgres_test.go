package repository

import (
	"context"
	"os"
	"testing"

	"github.com/ibradi0157/mon-blog/internal/database"
	"github.com/ibradi0157/mon-blog/internal/legal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPgWhere(t *testing.T) {
	tests := []struct {
		name  string
		f     Filter
		where string
		args  []any
	}{
		{"any", Filter{}, "", nil},
		{"slug", Filter{Slug: legal.SlugTerms}, " WHERE slug = $1", []any{"terms"}},
		{"published", Filter{PublishedOnly: true}, " WHERE published", nil},
		{"slug and published", Filter{Slug: legal.SlugPrivacy, PublishedOnly: true}, " WHERE slug = $1 AND published", []any{"privacy"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args := pgWhere(tt.f)
			assert.Equal(t, tt.where, where)
			assert.Equal(t, tt.args, args)
		})
	}
}

// Runs against a real server when POSTGRES_DSN is set. The legal_pages
// table is truncated first.
func TestPostgresRepo(t *testing.T) {
	dsn := os.Getenv("POSTGRES_DSN")
	if dsn == "" {
		t.Skip("POSTGRES_DSN not set")
	}
	ctx := context.Background()
	pool, err := database.ConnectPostgres(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	require.NoError(t, database.Migrate(ctx, pool))
	_, err = pool.Exec(ctx, "TRUNCATE legal_pages")
	require.NoError(t, err)

	testRepository(t, NewPostgresRepo(pool))
}
