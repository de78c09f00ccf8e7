package addrcache

import (
	"context"
	"sync"
	"time"
)

// MemoryCache is an in-process TTL map: a mutex-guarded map plus a
// parallel timestamp map, with an optional background goroutine
// (StartCleanupWorker) sweeping expired entries on a ticker. It caches tree
// skeletons, and a zero ttl means entries never expire.
type MemoryCache struct {
	mu         sync.RWMutex
	entries    map[string]Entry
	timestamps map[string]time.Time
	ttl        time.Duration
}

// NewMemoryCache builds a cache whose entries expire after ttl. A ttl of
// zero disables expiry.
func NewMemoryCache(ttl time.Duration) *MemoryCache {
	return &MemoryCache{
		entries:    make(map[string]Entry),
		timestamps: make(map[string]time.Time),
		ttl:        ttl,
	}
}

func (c *MemoryCache) Get(_ context.Context, key string) (Entry, bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.entries[key]
	if !ok {
		return Entry{}, false, nil
	}
	if c.expiredLocked(key) {
		return Entry{}, false, nil
	}
	return e, true, nil
}

func (c *MemoryCache) Set(_ context.Context, key string, entry Entry) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = entry
	c.timestamps[key] = time.Now()
	return nil
}

func (c *MemoryCache) expiredLocked(key string) bool {
	if c.ttl <= 0 {
		return false
	}
	ts, ok := c.timestamps[key]
	if !ok {
		return true
	}
	return time.Since(ts) > c.ttl
}

// Size reports the number of entries currently stored, expired or not.
func (c *MemoryCache) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// CleanupExpired removes every entry past its TTL.
func (c *MemoryCache) CleanupExpired() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for key := range c.entries {
		if c.expiredLocked(key) {
			delete(c.entries, key)
			delete(c.timestamps, key)
		}
	}
}

// StartCleanupWorker sweeps expired entries on interval until the returned
// stop function is called.
func (c *MemoryCache) StartCleanupWorker(interval time.Duration) (stop func()) {
	ticker := time.NewTicker(interval)
	done := make(chan struct{})
	go func() {
		for {
			select {
			case <-ticker.C:
				c.CleanupExpired()
			case <-done:
				ticker.Stop()
				return
			}
		}
	}()
	return func() { close(done) }
}

var _ Cache = (*MemoryCache)(nil)
