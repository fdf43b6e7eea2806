// Package cache implements a checksum-gated content cache.
package cache

import (
	"context"
	"errors"
	"sync"

	"go.trai.ch/osw/internal/core/domain"
	"go.trai.ch/zerr"
)

// Entry is a cached value together with the checksum of its source.
type Entry[V any] struct {
	Path     string
	Value    V
	Checksum string
}

// Options configure a ContentCache.
type Options[V any] struct {
	// Checksum computes the content checksum of a path. It must fail with
	// domain.ErrNotFound when the path does not exist.
	Checksum func(path string) (string, error)
	// Load builds the value for a path.
	Load func(ctx context.Context, path string) (V, error)
	// Stale reports whether a cached entry must be reloaded. The default
	// compares the stored checksum against the fresh one.
	Stale func(e *Entry[V], checksum string) bool
	// OnReplace is called after an existing entry was reloaded.
	OnReplace func(path string)
	// OnEvict is called after an entry was removed.
	OnEvict func(path string)
}

// ContentCache maps paths to values loaded from them. A value is served from
// the cache only while its source checksum is unchanged.
type ContentCache[V any] struct {
	mu      sync.Mutex
	opts    Options[V]
	entries map[string]*Entry[V]
}

// New creates an empty cache.
func New[V any](opts Options[V]) *ContentCache[V] {
	if opts.Stale == nil {
		opts.Stale = func(e *Entry[V], checksum string) bool {
			return e.Checksum != checksum
		}
	}
	return &ContentCache[V]{opts: opts, entries: make(map[string]*Entry[V])}
}

// Get returns the entry for path, loading it when absent, stale or forced.
func (c *ContentCache[V]) Get(ctx context.Context, path string, force bool) (*Entry[V], error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	sum, err := c.opts.Checksum(path)
	if err != nil {
		c.evictLocked(path)
		if errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		return nil, zerr.With(zerr.Wrap(domain.ErrNotFound, err.Error()), "path", path)
	}

	existing, ok := c.entries[path]
	if ok && !force && !c.opts.Stale(existing, sum) {
		return existing, nil
	}

	v, err := c.opts.Load(ctx, path)
	if err != nil {
		c.evictLocked(path)
		if hasTaxonomy(err) {
			return nil, err
		}
		return nil, zerr.With(zerr.Wrap(domain.ErrValidation, err.Error()), "path", path)
	}

	// Loading may write companion files, so the stored checksum is taken afterwards.
	if after, err := c.opts.Checksum(path); err == nil {
		sum = after
	}

	e := &Entry[V]{Path: path, Value: v, Checksum: sum}
	c.entries[path] = e
	if ok && c.opts.OnReplace != nil {
		c.opts.OnReplace(path)
	}
	return e, nil
}

// Peek returns the cached entry without checking its source.
func (c *ContentCache[V]) Peek(path string) (*Entry[V], bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[path]
	return e, ok
}

// Invalidate removes the entry for path.
func (c *ContentCache[V]) Invalidate(path string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.evictLocked(path)
}

// Reset removes every entry without firing eviction callbacks.
func (c *ContentCache[V]) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	clear(c.entries)
}

// Len returns the number of cached entries.
func (c *ContentCache[V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Snapshot returns the cached paths and their checksums.
func (c *ContentCache[V]) Snapshot() map[string]string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make(map[string]string, len(c.entries))
	for path, e := range c.entries {
		out[path] = e.Checksum
	}
	return out
}

func (c *ContentCache[V]) evictLocked(path string) bool {
	if _, ok := c.entries[path]; !ok {
		return false
	}
	delete(c.entries, path)
	if c.opts.OnEvict != nil {
		c.opts.OnEvict(path)
	}
	return true
}

func hasTaxonomy(err error) bool {
	return domain.IsAbsent(err) || domain.IsResolutionError(err) || errors.Is(err, context.Canceled) ||
		errors.Is(err, context.DeadlineExceeded)
}
