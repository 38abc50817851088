package cache

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/Cheertaboi/refill-pricing-service/internal/models"
)

// unreachableClient points at a closed local port so every command fails fast.
func unreachableClient(t *testing.T) *redis.Client {
	t.Helper()
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 200 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestRedisQuoteCache_SetLogsEncodeFailure(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	c := NewRedisQuoteCache(unreachableClient(t), time.Minute, zap.New(core))

	c.Set(context.Background(), "k", models.Quote{Total: math.Inf(1)})

	entries := logs.FilterMessage("encode quote for redis").All()
	if assert.Len(t, entries, 1) {
		assert.Equal(t, "k", entries[0].ContextMap()["key"])
	}
	assert.Zero(t, logs.FilterMessage("redis set failed").Len())
}

func TestRedisQuoteCache_UnavailableIsMiss(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	c := NewRedisQuoteCache(unreachableClient(t), time.Minute, zap.New(core))
	ctx := context.Background()

	_, ok := c.Get(ctx, "k")
	assert.False(t, ok)
	assert.Equal(t, 1, logs.FilterMessage("redis get failed").Len())

	c.Set(ctx, "k", models.Quote{Total: 65})
	assert.Equal(t, 1, logs.FilterMessage("redis set failed").Len())

	c.Delete(ctx, "k")
	assert.Equal(t, 1, logs.FilterMessage("redis del failed").Len())
}
