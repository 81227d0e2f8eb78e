package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	listTTL    = 60 * time.Second
	versionKey = "catalog:lists:version"
)

// ListCache stores serialized catalog list responses in Redis. Keys embed a
// version counter; bumping the counter on a price update orphans every cached
// page at once, so no SCAN is needed. Orphans age out via TTL.
type ListCache struct {
	rdb *redis.Client
}

func New(rdb *redis.Client) *ListCache {
	return &ListCache{rdb: rdb}
}

// Get returns the cached JSON for the query key, or "" on miss. Redis errors
// are logged and treated as misses; the cache never fails a request.
func (c *ListCache) Get(ctx context.Context, queryKey string) string {
	key, err := c.versionedKey(ctx, queryKey)
	if err != nil {
		return ""
	}
	val, err := c.rdb.Get(ctx, key).Result()
	if err == redis.Nil {
		return ""
	}
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("list cache get failed")
		return ""
	}
	return val
}

// Set stores the serialized response under the current version.
func (c *ListCache) Set(ctx context.Context, queryKey, payload string) {
	key, err := c.versionedKey(ctx, queryKey)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, key, payload, listTTL).Err(); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("list cache set failed")
	}
}

// InvalidateLists bumps the version counter, orphaning all cached pages.
func (c *ListCache) InvalidateLists(ctx context.Context) {
	if err := c.rdb.Incr(ctx, versionKey).Err(); err != nil {
		log.Warn().Err(err).Msg("list cache invalidate failed")
	}
}

func (c *ListCache) versionedKey(ctx context.Context, queryKey string) (string, error) {
	version, err := c.rdb.Get(ctx, versionKey).Int64()
	if err == redis.Nil {
		version = 0
	} else if err != nil {
		log.Warn().Err(err).Msg("list cache version lookup failed")
		return "", err
	}
	return fmt.Sprintf("catalog:lists:v%d:%s", version, queryKey), nil
}

// QueryKey builds a stable cache key from the request's filter tuple.
func QueryKey(parts ...string) string {
	key := "q"
	for _, p := range parts {
		key += ":" + p
	}
	return key
}
