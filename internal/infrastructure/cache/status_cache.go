package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

const statusKeyPrefix = "app:status:"

// StatusCache holds the getStatus projection per application. Every status
// transition invalidates the key, so a hit is never stale for longer than
// one write.
type StatusCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewStatusCache(rdb *redis.Client, ttl time.Duration) *StatusCache {
	return &StatusCache{rdb: rdb, ttl: ttl}
}

func (c *StatusCache) Get(ctx context.Context, applicationID string, out any) (bool, error) {
	v, err := c.rdb.Get(ctx, statusKeyPrefix+applicationID).Bytes()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(v, out); err != nil {
		return false, err
	}
	return true, nil
}

func (c *StatusCache) Set(ctx context.Context, applicationID string, v any) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, statusKeyPrefix+applicationID, payload, c.ttl).Err()
}

func (c *StatusCache) Invalidate(ctx context.Context, applicationID string) error {
	return c.rdb.Del(ctx, statusKeyPrefix+applicationID).Err()
}
