package quotes

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

const cacheExpiration = 5 * time.Minute

// Cache decorates a Provider with a redis-backed quote cache so repeated
// portfolio renders do not hammer the upstream API.
type Cache struct {
	next Provider
	rdb  *redis.Client
}

// NewCache wraps next with a redis cache.
func NewCache(next Provider, rdb *redis.Client) *Cache {
	return &Cache{next: next, rdb: rdb}
}

func cacheKey(symbol string) string {
	return fmt.Sprintf("stock:%s:quote", symbol)
}

// Lookup serves from redis when a fresh entry exists, otherwise asks the
// wrapped provider and caches the result. Cache failures are not fatal:
// the lookup falls through to the upstream provider.
func (c *Cache) Lookup(ctx context.Context, symbol string) (*Quote, error) {
	cached, err := c.rdb.Get(ctx, cacheKey(symbol)).Result()
	if err == nil {
		var quote Quote
		if err := json.Unmarshal([]byte(cached), &quote); err == nil {
			return &quote, nil
		}
	}

	return c.Refresh(ctx, symbol)
}

// Refresh fetches the quote from the wrapped provider and overwrites the
// cached entry.
func (c *Cache) Refresh(ctx context.Context, symbol string) (*Quote, error) {
	quote, err := c.next.Lookup(ctx, symbol)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(quote); err == nil {
		c.rdb.Set(ctx, cacheKey(symbol), data, cacheExpiration)
	}

	return quote, nil
}
