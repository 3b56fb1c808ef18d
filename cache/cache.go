// Package cache provides a Redis-backed cache-aside layer for catalog
// reads. A nil *Cache is valid and disables caching, so handlers do not
// need to branch on whether Redis is configured.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

type Cache struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// New wraps an existing Redis client. Keys are namespaced by prefix and
// expire after ttl.
func New(client *redis.Client, prefix string, ttl time.Duration) *Cache {
	return &Cache{client: client, prefix: prefix, ttl: ttl}
}

// Connect dials Redis at addr and returns a ready cache, or an error if
// the server is unreachable.
func Connect(ctx context.Context, addr, prefix string, ttl time.Duration) (*Cache, error) {
	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}
	return New(client, prefix, ttl), nil
}

// Get retrieves a cached value into dest. Returns false on a miss or when
// caching is disabled.
func (c *Cache) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	if c == nil {
		return false, nil
	}
	data, err := c.client.Get(ctx, c.prefix+key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return false, nil
		}
		return false, fmt.Errorf("cache get error: %w", err)
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return false, fmt.Errorf("cache unmarshal error: %w", err)
	}
	return true, nil
}

// Set stores value under key with the configured TTL.
func (c *Cache) Set(ctx context.Context, key string, value interface{}) error {
	if c == nil {
		return nil
	}
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("cache marshal error: %w", err)
	}
	if err := c.client.Set(ctx, c.prefix+key, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache set error: %w", err)
	}
	return nil
}

// Invalidate removes every key under the cache's prefix. Called after any
// catalog mutation so stale listings never outlive an admin write.
func (c *Cache) Invalidate(ctx context.Context) error {
	if c == nil {
		return nil
	}
	var cursor uint64
	for {
		keys, next, err := c.client.Scan(ctx, cursor, c.prefix+"*", 100).Result()
		if err != nil {
			return fmt.Errorf("cache scan error: %w", err)
		}
		if len(keys) > 0 {
			if err := c.client.Del(ctx, keys...).Err(); err != nil {
				return fmt.Errorf("cache delete error: %w", err)
			}
		}
		cursor = next
		if cursor == 0 {
			return nil
		}
	}
}
