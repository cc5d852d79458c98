package dataset

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// Cache memoizes the loaded snapshot for a fixed TTL. All sessions share
// one snapshot; on expiry the next Get reloads wholesale. There is no
// incremental update path.
type Cache struct {
	mu     sync.Mutex
	loader Loader
	ttl    time.Duration
	snap   *Snapshot

	now func() time.Time
}

const DefaultTTL = time.Hour

func NewCache(loader Loader, ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Cache{loader: loader, ttl: ttl, now: time.Now}
}

// Get returns the cached snapshot, loading one if the cache is empty or
// the TTL has passed.
func (c *Cache) Get(ctx context.Context) (*Snapshot, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.snap != nil && c.now().Sub(c.snap.LoadedAt) < c.ttl {
		return c.snap, nil
	}

	return c.loadLocked(ctx)
}

// Refresh discards the cached snapshot and loads a new one immediately.
func (c *Cache) Refresh(ctx context.Context) (*Snapshot, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.loadLocked(ctx)
}

// Invalidate drops the cached snapshot; the next Get reloads.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.snap = nil
}

// Current returns the cached snapshot without loading, nil if none.
func (c *Cache) Current() *Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.snap
}

func (c *Cache) loadLocked(ctx context.Context) (*Snapshot, error) {
	snap, err := c.loader.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("loader.Load: %w", err)
	}

	c.snap = snap
	return snap, nil
}
