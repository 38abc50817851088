package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/Cheertaboi/refill-pricing-service/internal/models"
)

const keyPrefix = "quote:"

// RedisQuoteCache shares quotes between service instances.
// Redis failures are logged and treated as cache misses.
type RedisQuoteCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

func NewRedisQuoteCache(client *redis.Client, ttl time.Duration, logger *zap.Logger) *RedisQuoteCache {
	return &RedisQuoteCache{client: client, ttl: ttl, logger: logger}
}

func (c *RedisQuoteCache) Get(ctx context.Context, key string) (models.Quote, bool) {
	raw, err := c.client.Get(ctx, keyPrefix+key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warn("redis get failed", zap.String("key", key), zap.Error(err))
		}
		return models.Quote{}, false
	}
	var q models.Quote
	if err := json.Unmarshal(raw, &q); err != nil {
		c.logger.Warn("corrupt cached quote", zap.String("key", key), zap.Error(err))
		return models.Quote{}, false
	}
	return q, true
}

func (c *RedisQuoteCache) Set(ctx context.Context, key string, q models.Quote) {
	raw, err := json.Marshal(q)
	if err != nil {
		c.logger.Warn("encode quote for redis", zap.String("key", key), zap.Error(err))
		return
	}
	if err := c.client.Set(ctx, keyPrefix+key, raw, c.ttl).Err(); err != nil {
		c.logger.Warn("redis set failed", zap.String("key", key), zap.Error(err))
	}
}

func (c *RedisQuoteCache) Delete(ctx context.Context, key string) {
	if err := c.client.Del(ctx, keyPrefix+key).Err(); err != nil {
		c.logger.Warn("redis del failed", zap.String("key", key), zap.Error(err))
	}
}
