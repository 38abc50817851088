package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Cheertaboi/refill-pricing-service/internal/models"
)

func TestQuoteCache_SetGet(t *testing.T) {
	c := NewQuoteCache(time.Minute)
	ctx := context.Background()

	_, ok := c.Get(ctx, "acetaminophen")
	assert.False(t, ok)

	c.Set(ctx, "acetaminophen", models.Quote{Prescription: "acetaminophen", Total: 65})
	q, ok := c.Get(ctx, "acetaminophen")
	assert.True(t, ok)
	assert.Equal(t, 65.0, q.Total)

	c.Delete(ctx, "acetaminophen")
	_, ok = c.Get(ctx, "acetaminophen")
	assert.False(t, ok)
}

func TestQuoteCache_Expiry(t *testing.T) {
	c := NewQuoteCache(time.Minute)
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }

	c.Set(context.Background(), "k", models.Quote{Total: 1})
	now = now.Add(30 * time.Second)
	_, ok := c.Get(context.Background(), "k")
	assert.True(t, ok)

	now = now.Add(time.Minute)
	_, ok = c.Get(context.Background(), "k")
	assert.False(t, ok)
}
