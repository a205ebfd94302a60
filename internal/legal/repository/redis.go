package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/ibradi0157/mon-blog/internal/legal"
	"github.com/redis/go-redis/v9"
)

// RedisRepo stores each page as JSON under "<prefix>page:<slug>" and keeps
// the set of slugs in a sorted set "<prefix>index" with score 0, so ZRANGE
// yields them in lexical order.
type RedisRepo struct {
	client *redis.Client
	prefix string
	now    func() time.Time
}

// NewRedisRepo creates a Redis-backed page repository. Prefix may be empty.
func NewRedisRepo(client *redis.Client, prefix string) *RedisRepo {
	if prefix == "" {
		prefix = "legal:"
	}
	return &RedisRepo{client: client, prefix: prefix, now: time.Now}
}

func (r *RedisRepo) pageKey(slug legal.Slug) string {
	return r.prefix + "page:" + string(slug)
}

func (r *RedisRepo) indexKey() string {
	return r.prefix + "index"
}

func (r *RedisRepo) get(ctx context.Context, slug legal.Slug) (*legal.Page, error) {
	b, err := r.client.Get(ctx, r.pageKey(slug)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, legal.ErrNotFound
		}
		return nil, err
	}
	var p legal.Page
	if err := json.Unmarshal(b, &p); err != nil {
		return nil, fmt.Errorf("decode legal page %q: %w", string(slug), err)
	}
	return &p, nil
}

func (r *RedisRepo) FindOne(ctx context.Context, f Filter) (*legal.Page, error) {
	if f.outsideCatalog() {
		return nil, legal.ErrNotFound
	}
	if f.Slug == "" {
		all, err := r.FindAll(ctx, f)
		if err != nil {
			return nil, err
		}
		if len(all) == 0 {
			return nil, legal.ErrNotFound
		}
		return all[0], nil
	}
	p, err := r.get(ctx, f.Slug)
	if err != nil {
		return nil, err
	}
	if !f.match(p) {
		return nil, legal.ErrNotFound
	}
	return p, nil
}

func (r *RedisRepo) FindAll(ctx context.Context, f Filter) ([]*legal.Page, error) {
	if f.outsideCatalog() {
		return []*legal.Page{}, nil
	}
	slugs, err := r.client.ZRange(ctx, r.indexKey(), 0, -1).Result()
	if err != nil {
		return nil, err
	}
	out := []*legal.Page{}
	if len(slugs) == 0 {
		return out, nil
	}
	keys := make([]string, len(slugs))
	for i, s := range slugs {
		keys[i] = r.pageKey(legal.Slug(s))
	}
	vals, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}
	for i, v := range vals {
		raw, ok := v.(string)
		if !ok {
			// indexed but the value is gone
			continue
		}
		var p legal.Page
		if err := json.Unmarshal([]byte(raw), &p); err != nil {
			return nil, fmt.Errorf("decode legal page %q: %w", slugs[i], err)
		}
		if f.match(&p) {
			out = append(out, &p)
		}
	}
	sortBySlug(out)
	return out, nil
}

// Save writes the page and its index entry in one MULTI/EXEC.
func (r *RedisRepo) Save(ctx context.Context, p *legal.Page) (*legal.Page, error) {
	row := p.Clone()
	existing, err := r.get(ctx, row.Slug)
	switch {
	case err == nil:
		row.ID = existing.ID
		row.CreatedAt = existing.CreatedAt
	case !errors.Is(err, legal.ErrNotFound):
		return nil, err
	}
	stamp(row, r.now().UTC())

	b, err := json.Marshal(row)
	if err != nil {
		return nil, err
	}
	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, r.pageKey(row.Slug), b, 0)
		pipe.ZAdd(ctx, r.indexKey(), redis.Z{Score: 0, Member: string(row.Slug)})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("save legal page %q: %w", string(row.Slug), err)
	}
	return row, nil
}
