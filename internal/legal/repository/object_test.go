package repository

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"testing"
	"unicode/utf8"

	"github.com/ibradi0157/mon-blog/internal/legal"
	"github.com/ibradi0157/mon-blog/internal/storage"
	"github.com/stretchr/testify/require"
)

var errNonUTF8Key = errors.New("Object name with non UTF-8 strings are not supported")

// fakeObjects is an in-memory ObjectStore. Like MinIO it refuses object
// names that are not valid UTF-8.
type fakeObjects struct {
	mu      sync.Mutex
	objects map[string][]byte
	putErr  error
}

func newFakeObjects() *fakeObjects {
	return &fakeObjects{objects: map[string][]byte{}}
}

func (f *fakeObjects) PutObject(_ context.Context, key string, data []byte, _ string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.putErr != nil {
		return f.putErr
	}
	if !utf8.ValidString(key) {
		return errNonUTF8Key
	}
	f.objects[key] = append([]byte(nil), data...)
	return nil
}

func (f *fakeObjects) GetObject(_ context.Context, key string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !utf8.ValidString(key) {
		return nil, errNonUTF8Key
	}
	b, ok := f.objects[key]
	if !ok {
		return nil, storage.ErrObjectNotFound
	}
	return b, nil
}

func (f *fakeObjects) ListKeys(_ context.Context, prefix string) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var keys []string
	for k := range f.objects {
		if strings.HasPrefix(k, prefix) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys, nil
}

func TestObjectRepo(t *testing.T) {
	testRepository(t, NewObjectRepo(newFakeObjects(), ""))
}

func TestObjectRepo_KeyLayoutAndForeignObjects(t *testing.T) {
	objs := newFakeObjects()
	repo := NewObjectRepo(objs, "pages/")
	ctx := context.Background()

	_, err := repo.Save(ctx, legal.New(legal.SlugCookies, legal.Content{Title: "Cookies"}))
	require.NoError(t, err)
	require.Contains(t, objs.objects, "pages/cookies.json")

	objs.objects["pages/README.txt"] = []byte("not a page")
	all, err := repo.FindAll(ctx, Filter{})
	require.NoError(t, err)
	require.Len(t, all, 1)
}

func TestObjectRepo_PropagatesStorageErrors(t *testing.T) {
	objs := newFakeObjects()
	objs.putErr = errors.New("bucket unavailable")
	repo := NewObjectRepo(objs, "")

	_, err := repo.Save(context.Background(), legal.New(legal.SlugTerms, legal.Content{Title: "Terms"}))
	require.Error(t, err)
	require.ErrorIs(t, err, objs.putErr)
}

func TestObjectRepo_MalformedSlugNeverReachesStore(t *testing.T) {
	repo := NewObjectRepo(newFakeObjects(), "")
	ctx := context.Background()

	_, err := repo.Save(ctx, legal.New(legal.SlugTerms, legal.Content{Title: "Terms"}))
	require.NoError(t, err)

	_, err = repo.FindOne(ctx, Filter{Slug: "\xff", PublishedOnly: true})
	require.ErrorIs(t, err, legal.ErrNotFound)
	require.NotErrorIs(t, err, errNonUTF8Key)
}
