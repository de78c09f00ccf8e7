package addrcache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// RedisCache is a distributed skeleton tier: the same key/value contract
// as MemoryCache, backed by Redis so a skeleton computed by one process
// instance is reusable by another. It verifies the connection on
// construction, namespaces keys with a fixed prefix, keeps hit/miss
// counters, and stores bare tree skeletons as JSON.
type RedisCache struct {
	client *redis.Client
	logger *zap.Logger
	prefix string
	ttl    time.Duration

	hits   int64
	misses int64
}

// NewRedisCache dials redisURL and verifies the connection with a Ping
// before returning.
func NewRedisCache(redisURL string, ttl time.Duration, logger *zap.Logger) (*RedisCache, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("connect to redis: %w", err)
	}

	return &RedisCache{client: client, logger: logger, prefix: "addr_parser:skeleton:", ttl: ttl}, nil
}

func (c *RedisCache) Get(ctx context.Context, key string) (Entry, bool, error) {
	val, err := c.client.Get(ctx, c.prefix+key).Result()
	if err == redis.Nil {
		c.misses++
		return Entry{}, false, nil
	}
	if err != nil {
		c.logger.Error("redis get failed", zap.Error(err), zap.String("key", key))
		return Entry{}, false, err
	}

	var doc entryDoc
	if err := json.Unmarshal([]byte(val), &doc); err != nil {
		c.logger.Error("redis skeleton unmarshal failed", zap.Error(err))
		return Entry{}, false, err
	}
	c.hits++
	return fromEntryDoc(doc), true, nil
}

func (c *RedisCache) Set(ctx context.Context, key string, entry Entry) error {
	data, err := json.Marshal(toEntryDoc(entry))
	if err != nil {
		return fmt.Errorf("marshal skeleton: %w", err)
	}
	if err := c.client.Set(ctx, c.prefix+key, data, c.ttl).Err(); err != nil {
		c.logger.Error("redis set failed", zap.Error(err), zap.String("key", key))
		return err
	}
	return nil
}

// Stats reports hit/miss counters accumulated so far.
func (c *RedisCache) Stats() (hits, misses int64) { return c.hits, c.misses }

// Close releases the underlying Redis client.
func (c *RedisCache) Close() error { return c.client.Close() }

var _ Cache = (*RedisCache)(nil)
