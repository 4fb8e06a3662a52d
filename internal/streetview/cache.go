package streetview

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

// Fetcher is satisfied by both Client and Cache.
type Fetcher interface {
	Fetch(ctx context.Context, req Request) ([]byte, error)
}

// Cache is a read-through redis cache in front of another Fetcher.
type Cache struct {
	redis  *redis.Client
	next   Fetcher
	ttl    time.Duration
	logger *slog.Logger
}

func NewCache(redisClient *redis.Client, next Fetcher, ttl time.Duration, logger *slog.Logger) *Cache {
	if ttl == 0 {
		ttl = 24 * time.Hour
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Cache{
		redis:  redisClient,
		next:   next,
		ttl:    ttl,
		logger: logger.With("component", "streetview_cache"),
	}
}

func cacheKey(req Request) string {
	return fmt.Sprintf("streetview:%.6f:%.6f:%g:%g:%d", req.Lat, req.Lon, req.Heading, req.Pitch, req.FOV)
}

func (c *Cache) Fetch(ctx context.Context, req Request) ([]byte, error) {
	key := cacheKey(req)

	data, err := c.redis.Get(ctx, key).Bytes()
	if err == nil {
		return data, nil
	}
	if !errors.Is(err, redis.Nil) {
		c.logger.Warn("cache read failed", "key", key, "error", err)
	}

	data, err = c.next.Fetch(ctx, req)
	if err != nil {
		return nil, err
	}

	if err := c.redis.Set(ctx, key, data, c.ttl).Err(); err != nil {
		c.logger.Warn("cache write failed", "key", key, "error", err)
	}
	return data, nil
}
