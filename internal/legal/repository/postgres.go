package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/ibradi0157/mon-blog/internal/legal"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresRepo stores pages in the legal_pages table. The schema lives in
// internal/database/migrations.
type PostgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgresRepo(pool *pgxpool.Pool) *PostgresRepo {
	return &PostgresRepo{pool: pool}
}

const pageColumns = `id, slug, title, body, published, created_at, updated_at`

func pgWhere(f Filter) (string, []any) {
	var (
		conds []string
		args  []any
	)
	if f.Slug != "" {
		args = append(args, string(f.Slug))
		conds = append(conds, fmt.Sprintf("slug = $%d", len(args)))
	}
	if f.PublishedOnly {
		conds = append(conds, "published")
	}
	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func scanPage(row pgx.Row) (*legal.Page, error) {
	var (
		p    legal.Page
		slug string
	)
	if err := row.Scan(&p.ID, &slug, &p.Title, &p.Body, &p.Published, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	p.Slug = legal.Slug(slug)
	return &p, nil
}

func (r *PostgresRepo) FindOne(ctx context.Context, f Filter) (*legal.Page, error) {
	if f.outsideCatalog() {
		return nil, legal.ErrNotFound
	}
	where, args := pgWhere(f)
	p, err := scanPage(r.pool.QueryRow(ctx, `SELECT `+pageColumns+` FROM legal_pages`+where+` ORDER BY slug LIMIT 1`, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, legal.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find legal page: %w", err)
	}
	return p, nil
}

func (r *PostgresRepo) FindAll(ctx context.Context, f Filter) ([]*legal.Page, error) {
	if f.outsideCatalog() {
		return []*legal.Page{}, nil
	}
	where, args := pgWhere(f)
	rows, err := r.pool.Query(ctx, `SELECT `+pageColumns+` FROM legal_pages`+where+` ORDER BY slug`, args...)
	if err != nil {
		return nil, fmt.Errorf("list legal pages: %w", err)
	}
	defer rows.Close()

	out := []*legal.Page{}
	for rows.Next() {
		p, err := scanPage(rows)
		if err != nil {
			return nil, fmt.Errorf("scan legal page: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// Save upserts on the slug unique constraint; id and created_at survive
// updates.
func (r *PostgresRepo) Save(ctx context.Context, p *legal.Page) (*legal.Page, error) {
	now := time.Now().UTC()
	id := p.ID
	if id == "" {
		id = uuid.NewString()
	}
	created := p.CreatedAt
	if created.IsZero() {
		created = now
	}
	saved, err := scanPage(r.pool.QueryRow(ctx, `
		INSERT INTO legal_pages (`+pageColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (slug)
		DO UPDATE SET title = EXCLUDED.title,
		              body = EXCLUDED.body,
		              published = EXCLUDED.published,
		              updated_at = EXCLUDED.updated_at
		RETURNING `+pageColumns,
		id, string(p.Slug), p.Title, p.Body, p.Published, created, now,
	))
	if err != nil {
		return nil, fmt.Errorf("save legal page %q: %w", string(p.Slug), err)
	}
	return saved, nil
}
