// Package cache holds the Redis-backed TTL store that fronts quote reads.
// Quotes are immutable once issued, so plain key-value with expiry is
// enough; there is no invalidation beyond the TTL.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"stayquote/internal/infra"
	"stayquote/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const quoteKeyPrefix = "quote:"

type QuoteCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewQuoteCache(client *redis.Client, ttl time.Duration) *QuoteCache {
	return &QuoteCache{
		client: client,
		ttl:    ttl,
	}
}

// Get returns (nil, nil) on a cache miss.
func (c *QuoteCache) Get(ctx context.Context, id uuid.UUID) (*queries.QuoteView, error) {
	data, err := c.client.Get(ctx, quoteKeyPrefix+id.String()).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to read quote from cache", err, infra.KindCacheFailure)
	}

	var view queries.QuoteView
	if err := json.Unmarshal(data, &view); err != nil {
		// A corrupt entry behaves like a miss; the store is authoritative.
		return nil, nil
	}
	return &view, nil
}

func (c *QuoteCache) Set(ctx context.Context, view *queries.QuoteView) error {
	data, err := json.Marshal(view)
	if err != nil {
		return infra.WrapRepoErr("failed to encode quote for cache", err, infra.KindCacheFailure)
	}

	if err := c.client.Set(ctx, quoteKeyPrefix+view.ID.String(), data, c.ttl).Err(); err != nil {
		return infra.WrapRepoErr("failed to write quote to cache", err, infra.KindCacheFailure)
	}
	return nil
}
