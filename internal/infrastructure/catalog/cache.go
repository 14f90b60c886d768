// internal/infrastructure/catalog/cache.go
package catalog

import (
	"context"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache holds raw catalog responses for the revalidation window. Entries
// are read-only upstream data, never store state, so expiry is the only
// invalidation needed.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, data []byte) error
}

// MemoryCache is the default in-process cache.
type MemoryCache struct {
	ttl     time.Duration
	mu      sync.RWMutex
	entries map[string]memoryEntry
}

type memoryEntry struct {
	data      []byte
	expiresAt time.Time
}

// NewMemoryCache creates an in-process cache with the given TTL.
func NewMemoryCache(ttl time.Duration) *MemoryCache {
	return &MemoryCache{
		ttl:     ttl,
		entries: make(map[string]memoryEntry),
	}
}

// Get returns the cached bytes for key if the entry is still fresh.
func (c *MemoryCache) Get(_ context.Context, key string) ([]byte, bool) {
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok || time.Now().After(entry.expiresAt) {
		return nil, false
	}
	return entry.data, true
}

// Set stores data under key for the cache TTL.
func (c *MemoryCache) Set(_ context.Context, key string, data []byte) error {
	c.mu.Lock()
	c.entries[key] = memoryEntry{
		data:      data,
		expiresAt: time.Now().Add(c.ttl),
	}
	c.mu.Unlock()
	return nil
}

// RedisCache keeps catalog responses in Redis so several instances share
// one revalidation window.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisCache creates a Redis-backed cache with the given TTL.
func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{client: client, ttl: ttl}
}

// Get returns the cached bytes for key. Redis failures read as misses.
func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, bool) {
	data, err := c.client.Get(ctx, cacheKey(key)).Bytes()
	if err != nil {
		return nil, false
	}
	return data, true
}

// Set stores data under key for the cache TTL.
func (c *RedisCache) Set(ctx context.Context, key string, data []byte) error {
	return c.client.Set(ctx, cacheKey(key), data, c.ttl).Err()
}

func cacheKey(key string) string {
	return "catalog:" + key
}
