package cache

import (
	"context"
	"fmt"
	"sync"

	"github.com/golang/groupcache/lru"
	"github.com/golang/groupcache/singleflight"
)

// Loader produces the value for a key on a cache miss.
type Loader[V any] func(ctx context.Context, key string) (V, error)

// Async is a bounded LRU cache that fills misses through a Loader.
// Concurrent misses for the same key share a single load, run under the
// context of the caller that started it. Failed loads are not cached.
type Async[V any] struct {
	mu      sync.Mutex
	entries *lru.Cache
	group   singleflight.Group
	load    Loader[V]

	// missed, when set, runs after a lookup misses and before the load is joined.
	missed func(key string)
}

// NewAsync creates a cache holding at most maxEntries values.
// maxEntries <= 0 means no limit.
func NewAsync[V any](maxEntries int, load Loader[V]) *Async[V] {
	if maxEntries < 0 {
		maxEntries = 0
	}
	return &Async[V]{
		entries: lru.New(maxEntries),
		load:    load,
	}
}

// Get calls callback with the value for key, loading it first if needed.
// callback runs at most once, and only on success. Every caller receives the
// same cached value, so callbacks must treat it as read-only.
func (c *Async[V]) Get(ctx context.Context, key string, callback func(V)) error {
	if v, ok := c.lookup(key); ok {
		callback(v)
		return nil
	}

	if err := ctx.Err(); err != nil {
		return err
	}
	if c.missed != nil {
		c.missed(key)
	}

	res, err := c.group.Do(key, func() (interface{}, error) {
		if v, ok := c.lookup(key); ok {
			return v, nil
		}
		v, err := c.load(ctx, key)
		if err != nil {
			return nil, err
		}
		c.store(key, v)
		return v, nil
	})
	if err != nil {
		return fmt.Errorf("cache: load %q: %w", key, err)
	}

	callback(res.(V))
	return nil
}

// Len returns the number of cached values.
func (c *Async[V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.entries.Len()
}

// Purge drops every cached value.
func (c *Async[V]) Purge() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries.Clear()
}

func (c *Async[V]) lookup(key string) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if v, ok := c.entries.Get(key); ok {
		return v.(V), true
	}
	var zero V
	return zero, false
}

func (c *Async[V]) store(key string, v V) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries.Add(key, v)
}
