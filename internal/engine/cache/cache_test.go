package cache_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/osw/internal/adapters/fs"
	"go.trai.ch/osw/internal/core/domain"
	"go.trai.ch/osw/internal/engine/cache"
)

type recorder struct {
	loads    int
	replaced []string
	evicted  []string
}

func newCache(t *testing.T, rec *recorder, load func(path string) (string, error)) *cache.ContentCache[string] {
	t.Helper()
	hasher := fs.NewHasher(fs.NewWalker())
	return cache.New(cache.Options[string]{
		Checksum: hasher.Checksum,
		Load: func(_ context.Context, path string) (string, error) {
			rec.loads++
			return load(path)
		},
		OnReplace: func(path string) { rec.replaced = append(rec.replaced, path) },
		OnEvict:   func(path string) { rec.evicted = append(rec.evicted, path) },
	})
}

func readFile(path string) (string, error) {
	b, err := os.ReadFile(path)
	return string(b), err
}

func write(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), domain.PrivateFilePerm))
}

func TestContentCache_Idempotence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "house.osm")
	write(t, path, "a")

	rec := &recorder{}
	c := newCache(t, rec, readFile)

	first, err := c.Get(context.Background(), path, false)
	require.NoError(t, err)
	second, err := c.Get(context.Background(), path, false)
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, 1, rec.loads)
	assert.Empty(t, rec.replaced)
}

func TestContentCache_ChecksumSensitivity(t *testing.T) {
	path := filepath.Join(t.TempDir(), "house.osm")
	write(t, path, "a")

	rec := &recorder{}
	c := newCache(t, rec, readFile)

	first, err := c.Get(context.Background(), path, false)
	require.NoError(t, err)

	write(t, path, "b")
	second, err := c.Get(context.Background(), path, false)
	require.NoError(t, err)

	assert.NotEqual(t, first.Checksum, second.Checksum)
	assert.Equal(t, "b", second.Value)
	assert.Equal(t, 2, rec.loads)
	assert.Equal(t, []string{path}, rec.replaced)
}

func TestContentCache_Force(t *testing.T) {
	path := filepath.Join(t.TempDir(), "house.osm")
	write(t, path, "a")

	rec := &recorder{}
	c := newCache(t, rec, readFile)

	_, err := c.Get(context.Background(), path, false)
	require.NoError(t, err)
	_, err = c.Get(context.Background(), path, true)
	require.NoError(t, err)
	assert.Equal(t, 2, rec.loads)
}

func TestContentCache_EvictOnRemoval(t *testing.T) {
	path := filepath.Join(t.TempDir(), "house.osm")
	write(t, path, "a")

	rec := &recorder{}
	c := newCache(t, rec, readFile)

	_, err := c.Get(context.Background(), path, false)
	require.NoError(t, err)
	require.NoError(t, os.Remove(path))

	_, err = c.Get(context.Background(), path, false)
	require.ErrorIs(t, err, domain.ErrNotFound)
	assert.True(t, domain.IsAbsent(err))
	assert.Equal(t, 0, c.Len())
	assert.Equal(t, []string{path}, rec.evicted)
}

func TestContentCache_EvictOnLoadFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "house.osm")
	write(t, path, "a")

	rec := &recorder{}
	fail := false
	c := newCache(t, rec, func(path string) (string, error) {
		if fail {
			return "", errors.New("corrupt")
		}
		return readFile(path)
	})

	_, err := c.Get(context.Background(), path, false)
	require.NoError(t, err)

	fail = true
	write(t, path, "garbage")
	_, err = c.Get(context.Background(), path, false)
	require.ErrorIs(t, err, domain.ErrValidation)
	_, ok := c.Peek(path)
	assert.False(t, ok)
}

func TestContentCache_CustomStale(t *testing.T) {
	path := filepath.Join(t.TempDir(), "house.osm")
	write(t, path, "a")

	loads := 0
	stale := true
	hasher := fs.NewHasher(fs.NewWalker())
	c := cache.New(cache.Options[int]{
		Checksum: hasher.Checksum,
		Load: func(context.Context, string) (int, error) {
			loads++
			return loads, nil
		},
		Stale: func(*cache.Entry[int], string) bool { return stale },
	})

	_, err := c.Get(context.Background(), path, false)
	require.NoError(t, err)
	e, err := c.Get(context.Background(), path, false)
	require.NoError(t, err)
	assert.Equal(t, 2, e.Value)

	stale = false
	e, err = c.Get(context.Background(), path, false)
	require.NoError(t, err)
	assert.Equal(t, 2, e.Value)
}

func TestContentCache_SnapshotInvalidateReset(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.osm")
	b := filepath.Join(dir, "b.osm")
	write(t, a, "a")
	write(t, b, "b")

	rec := &recorder{}
	c := newCache(t, rec, readFile)
	for _, p := range []string{a, b} {
		_, err := c.Get(context.Background(), p, false)
		require.NoError(t, err)
	}

	snap := c.Snapshot()
	assert.Len(t, snap, 2)
	assert.Len(t, snap[a], 16)

	assert.True(t, c.Invalidate(a))
	assert.False(t, c.Invalidate(a))
	assert.Equal(t, []string{a}, rec.evicted)

	c.Reset()
	assert.Equal(t, 0, c.Len())
	assert.Equal(t, []string{a}, rec.evicted)
}
