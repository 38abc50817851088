package cache

import (
	"context"
	"sync"
	"time"

	"github.com/Cheertaboi/refill-pricing-service/internal/models"
)

type entry struct {
	quote   models.Quote
	expires time.Time
}

// QuoteCache is an in-process quote cache with a fixed TTL.
type QuoteCache struct {
	mu    sync.RWMutex
	ttl   time.Duration
	now   func() time.Time
	store map[string]entry
}

func NewQuoteCache(ttl time.Duration) *QuoteCache {
	return &QuoteCache{
		ttl:   ttl,
		now:   time.Now,
		store: make(map[string]entry),
	}
}

func (c *QuoteCache) Get(_ context.Context, key string) (models.Quote, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.store[key]
	if !ok || c.now().After(e.expires) {
		return models.Quote{}, false
	}
	return e.quote, true
}

func (c *QuoteCache) Set(_ context.Context, key string, q models.Quote) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.store[key] = entry{quote: q, expires: c.now().Add(c.ttl)}
}

func (c *QuoteCache) Delete(_ context.Context, key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.store, key)
}
