package cache

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/dgsoftwash/booking-api/internal/usecase/pricing"
)

const catalogKey = "pricing:catalog"

// RedisCatalogCache keeps the pricing catalog in Redis under a TTL.
// Misses and Redis faults both read through to the store.
type RedisCatalogCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisCatalogCache(client *redis.Client, ttl time.Duration) *RedisCatalogCache {
	return &RedisCatalogCache{client: client, ttl: ttl}
}

func (c *RedisCatalogCache) Get(ctx context.Context) (*pricing.Catalog, bool) {
	raw, err := c.client.Get(ctx, catalogKey).Bytes()
	if err != nil {
		return nil, false
	}
	var catalog pricing.Catalog
	if err := json.Unmarshal(raw, &catalog); err != nil {
		return nil, false
	}
	return &catalog, true
}

func (c *RedisCatalogCache) Set(ctx context.Context, catalog *pricing.Catalog) {
	raw, err := json.Marshal(catalog)
	if err != nil {
		return
	}
	c.client.Set(ctx, catalogKey, raw, c.ttl)
}

func (c *RedisCatalogCache) Invalidate(ctx context.Context) {
	c.client.Del(ctx, catalogKey)
}

// MemoryCatalogCache is the single-instance fallback used when no
// Redis address is configured, and by tests.
type MemoryCatalogCache struct {
	mu      sync.RWMutex
	catalog *pricing.Catalog
	expires time.Time
	ttl     time.Duration
}

func NewMemoryCatalogCache(ttl time.Duration) *MemoryCatalogCache {
	return &MemoryCatalogCache{ttl: ttl}
}

func (c *MemoryCatalogCache) Get(ctx context.Context) (*pricing.Catalog, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.catalog == nil || time.Now().After(c.expires) {
		return nil, false
	}
	return c.catalog, true
}

func (c *MemoryCatalogCache) Set(ctx context.Context, catalog *pricing.Catalog) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.catalog = catalog
	c.expires = time.Now().Add(c.ttl)
}

func (c *MemoryCatalogCache) Invalidate(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.catalog = nil
}

var (
	_ pricing.Cache = (*RedisCatalogCache)(nil)
	_ pricing.Cache = (*MemoryCatalogCache)(nil)
)
