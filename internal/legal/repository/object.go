package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ibradi0157/mon-blog/internal/legal"
	"github.com/ibradi0157/mon-blog/internal/storage"
)

// ObjectStore is the subset of an object storage client used by ObjectRepo.
// *storage.MinIOStorage satisfies it.
type ObjectStore interface {
	PutObject(ctx context.Context, key string, data []byte, contentType string) error
	GetObject(ctx context.Context, key string) ([]byte, error)
	ListKeys(ctx context.Context, prefix string) ([]string, error)
}

// ObjectRepo keeps one JSON object per page at "<prefix><slug>.json".
type ObjectRepo struct {
	store  ObjectStore
	prefix string
	now    func() time.Time
}

func NewObjectRepo(store ObjectStore, prefix string) *ObjectRepo {
	if prefix == "" {
		prefix = "legal-pages/"
	}
	return &ObjectRepo{store: store, prefix: prefix, now: time.Now}
}

func (o *ObjectRepo) key(slug legal.Slug) string {
	return o.prefix + string(slug) + ".json"
}

func (o *ObjectRepo) get(ctx context.Context, key string) (*legal.Page, error) {
	b, err := o.store.GetObject(ctx, key)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotFound) {
			return nil, legal.ErrNotFound
		}
		return nil, err
	}
	var p legal.Page
	if err := json.Unmarshal(b, &p); err != nil {
		return nil, fmt.Errorf("decode %s: %w", key, err)
	}
	return &p, nil
}

func (o *ObjectRepo) FindOne(ctx context.Context, f Filter) (*legal.Page, error) {
	if f.outsideCatalog() {
		return nil, legal.ErrNotFound
	}
	if f.Slug == "" {
		all, err := o.FindAll(ctx, f)
		if err != nil {
			return nil, err
		}
		if len(all) == 0 {
			return nil, legal.ErrNotFound
		}
		return all[0], nil
	}
	p, err := o.get(ctx, o.key(f.Slug))
	if err != nil {
		return nil, err
	}
	if !f.match(p) {
		return nil, legal.ErrNotFound
	}
	return p, nil
}

func (o *ObjectRepo) FindAll(ctx context.Context, f Filter) ([]*legal.Page, error) {
	if f.outsideCatalog() {
		return []*legal.Page{}, nil
	}
	keys, err := o.store.ListKeys(ctx, o.prefix)
	if err != nil {
		return nil, err
	}
	out := []*legal.Page{}
	for _, k := range keys {
		if !strings.HasSuffix(k, ".json") {
			continue
		}
		p, err := o.get(ctx, k)
		if errors.Is(err, legal.ErrNotFound) {
			// removed between list and get
			continue
		}
		if err != nil {
			return nil, err
		}
		if f.match(p) {
			out = append(out, p)
		}
	}
	sortBySlug(out)
	return out, nil
}

func (o *ObjectRepo) Save(ctx context.Context, p *legal.Page) (*legal.Page, error) {
	row := p.Clone()
	existing, err := o.get(ctx, o.key(row.Slug))
	switch {
	case err == nil:
		row.ID = existing.ID
		row.CreatedAt = existing.CreatedAt
	case !errors.Is(err, legal.ErrNotFound):
		return nil, err
	}
	stamp(row, o.now().UTC())

	b, err := json.Marshal(row)
	if err != nil {
		return nil, err
	}
	if err := o.store.PutObject(ctx, o.key(row.Slug), b, "application/json"); err != nil {
		return nil, fmt.Errorf("save legal page %q: %w", string(row.Slug), err)
	}
	return row, nil
}
