package cache

import (
	"construction-estimator-service/internal/domain"
	"construction-estimator-service/internal/platform/obs"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisEstimateCache stores computed breakdowns in Redis with a TTL.
type RedisEstimateCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisEstimateCache(client *redis.Client, ttl time.Duration) *RedisEstimateCache {
	return &RedisEstimateCache{Client: client, TTL: ttl}
}

func (c *RedisEstimateCache) Get(
	ctx context.Context,
	dims domain.BuildingDimensions,
) (_ *domain.EstimateBreakdown, _ bool, err error) {
	defer obs.Time(ctx, "estimate.cache.redis.Get")(&err)

	if c.Client == nil {
		return nil, false, errors.New("redis estimate cache: client is nil")
	}

	key, err := KeyFor(dims)
	if err != nil {
		return nil, false, err
	}

	raw, err := c.Client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get estimate cache: redis get %s: %w", key, err)
	}

	var b domain.EstimateBreakdown
	if err := json.Unmarshal(raw, &b); err != nil {
		return nil, false, fmt.Errorf("get estimate cache: decode %s: %w", key, err)
	}

	return &b, true, nil
}

func (c *RedisEstimateCache) Set(
	ctx context.Context,
	dims domain.BuildingDimensions,
	b *domain.EstimateBreakdown,
) (err error) {
	defer obs.Time(ctx, "estimate.cache.redis.Set")(&err)

	if c.Client == nil {
		return errors.New("redis estimate cache: client is nil")
	}
	if b == nil {
		return errors.New("set estimate cache: breakdown must not be nil")
	}

	key, err := KeyFor(dims)
	if err != nil {
		return err
	}

	raw, err := json.Marshal(b)
	if err != nil {
		return fmt.Errorf("set estimate cache: encode breakdown: %w", err)
	}

	if err := c.Client.Set(ctx, key, raw, c.TTL).Err(); err != nil {
		return fmt.Errorf("set estimate cache: redis set %s: %w", key, err)
	}

	return nil
}
