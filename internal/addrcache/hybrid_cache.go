package addrcache

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// HybridCache pairs a fast L1 (typically RedisCache) with a durable L2
// (typically MongoCache): reads check L1 first and fall back to L2, syncing an L2 hit back up to L1 in the background; writes
// fan out to both tiers concurrently and wait for both.
type HybridCache struct {
	l1     Cache
	l2     Cache
	logger *zap.Logger
}

// NewHybridCache builds a HybridCache from an already-constructed L1 and
// L2 tier.
func NewHybridCache(l1, l2 Cache, logger *zap.Logger) *HybridCache {
	return &HybridCache{l1: l1, l2: l2, logger: logger}
}

func (c *HybridCache) Get(ctx context.Context, key string) (Entry, bool, error) {
	entry, found, err := c.l1.Get(ctx, key)
	if err != nil {
		c.logger.Warn("l1 cache error, falling back to l2", zap.Error(err))
	} else if found {
		return entry, true, nil
	}

	entry, found, err = c.l2.Get(ctx, key)
	if err != nil {
		return Entry{}, false, err
	}
	if !found {
		return Entry{}, false, nil
	}

	go func(e Entry) {
		bgCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := c.l1.Set(bgCtx, key, e); err != nil {
			c.logger.Warn("l2->l1 sync failed", zap.Error(err), zap.String("key", key))
		}
	}(entry)

	return entry, true, nil
}

func (c *HybridCache) Set(ctx context.Context, key string, entry Entry) error {
	errCh := make(chan error, 2)

	go func() { errCh <- c.l1.Set(ctx, key, entry) }()
	go func() { errCh <- c.l2.Set(ctx, key, entry) }()

	var errs []error
	for i := 0; i < 2; i++ {
		if err := <-errCh; err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("hybrid cache set errors: %v", errs)
	}
	return nil
}

var _ Cache = (*HybridCache)(nil)
