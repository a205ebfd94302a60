package repository

import (
	"context"
	"sync"
	"time"

	"github.com/ibradi0157/mon-blog/internal/legal"
)

// MemoryRepo keeps pages in a map keyed by slug. Used for local runs and
// as the substitutable fake in tests. Callers always receive copies.
type MemoryRepo struct {
	mu    sync.RWMutex
	store map[legal.Slug]*legal.Page
	now   func() time.Time
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{store: make(map[legal.Slug]*legal.Page), now: time.Now}
}

func (m *MemoryRepo) FindOne(_ context.Context, f Filter) (*legal.Page, error) {
	if f.outsideCatalog() {
		return nil, legal.ErrNotFound
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if f.Slug != "" {
		if p, ok := m.store[f.Slug]; ok && f.match(p) {
			return p.Clone(), nil
		}
		return nil, legal.ErrNotFound
	}
	all := m.findAllLocked(f)
	if len(all) == 0 {
		return nil, legal.ErrNotFound
	}
	return all[0], nil
}

func (m *MemoryRepo) FindAll(_ context.Context, f Filter) ([]*legal.Page, error) {
	if f.outsideCatalog() {
		return []*legal.Page{}, nil
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.findAllLocked(f), nil
}

func (m *MemoryRepo) findAllLocked(f Filter) []*legal.Page {
	out := make([]*legal.Page, 0, len(m.store))
	for _, p := range m.store {
		if f.match(p) {
			out = append(out, p.Clone())
		}
	}
	sortBySlug(out)
	return out
}

func (m *MemoryRepo) Save(_ context.Context, p *legal.Page) (*legal.Page, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	row := p.Clone()
	if existing, ok := m.store[row.Slug]; ok {
		row.ID = existing.ID
		row.CreatedAt = existing.CreatedAt
	}
	stamp(row, m.now())
	m.store[row.Slug] = row
	return row.Clone(), nil
}

// Len returns the number of stored pages.
func (m *MemoryRepo) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.store)
}
