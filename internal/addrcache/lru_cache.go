package addrcache

import (
	"context"

	lru "github.com/hashicorp/golang-lru/v2"
)

// LRUCache is the default bounded in-process skeleton cache: a fixed
// capacity, least-recently-used eviction, and no expiry. It is the
// natural fit for the parse cache's own contract (an arbitrary, possibly
// evicting container the pipeline must tolerate) and needs no external
// dependency to run.
type LRUCache struct {
	inner *lru.Cache[string, Entry]
}

// NewLRUCache builds an LRUCache holding at most capacity skeletons.
func NewLRUCache(capacity int) (*LRUCache, error) {
	inner, err := lru.New[string, Entry](capacity)
	if err != nil {
		return nil, err
	}
	return &LRUCache{inner: inner}, nil
}

func (c *LRUCache) Get(_ context.Context, key string) (Entry, bool, error) {
	e, ok := c.inner.Get(key)
	if !ok {
		return Entry{}, false, nil
	}
	return e, true, nil
}

func (c *LRUCache) Set(_ context.Context, key string, entry Entry) error {
	c.inner.Add(key, entry)
	return nil
}

// Len reports how many skeletons are currently cached.
func (c *LRUCache) Len() int { return c.inner.Len() }

var _ Cache = (*LRUCache)(nil)
