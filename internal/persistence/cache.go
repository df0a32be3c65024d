package persistence

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"github.com/sokobo/storefront/internal/domain"
)

const cacheKeySet = "products:keys"

// ProductCache is a read-through cache for product listings. Lookups
// degrade to cache misses on any redis failure, so the catalog stays
// available when redis is down or disabled.
type ProductCache struct {
	redis  *Redis
	ttl    time.Duration
	logger *zap.Logger
}

// NewProductCache builds the cache.
func NewProductCache(r *Redis, ttl time.Duration, logger *zap.Logger) *ProductCache {
	return &ProductCache{redis: r, ttl: ttl, logger: logger}
}

// Get returns the cached listing for key, when present.
func (c *ProductCache) Get(ctx context.Context, key string) ([]domain.Product, bool) {
	if c == nil || !c.redis.Enabled() {
		return nil, false
	}

	raw, err := c.redis.Client.Get(ctx, key).Bytes()
	if err != nil {
		return nil, false
	}

	var products []domain.Product
	if err := json.Unmarshal(raw, &products); err != nil {
		c.logger.Warn("corrupt product cache entry", zap.String("key", key), zap.Error(err))
		return nil, false
	}
	return products, true
}

// Set stores a listing under key and tracks the key for invalidation.
func (c *ProductCache) Set(ctx context.Context, key string, products []domain.Product) {
	if c == nil || !c.redis.Enabled() {
		return
	}

	raw, err := json.Marshal(products)
	if err != nil {
		return
	}
	if err := c.redis.Client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		c.logger.Warn("product cache set failed", zap.String("key", key), zap.Error(err))
		return
	}
	_ = c.redis.Client.SAdd(ctx, cacheKeySet, key).Err()
}

// Invalidate drops every tracked listing key. Called after any catalog
// mutation.
func (c *ProductCache) Invalidate(ctx context.Context) {
	if c == nil || !c.redis.Enabled() {
		return
	}

	keys, err := c.redis.Client.SMembers(ctx, cacheKeySet).Result()
	if err != nil {
		return
	}
	if len(keys) > 0 {
		_ = c.redis.Client.Del(ctx, keys...).Err()
	}
	_ = c.redis.Client.Del(ctx, cacheKeySet).Err()
}
