package cache

import (
	"context"
	"encoding/json"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/dukaops/enterprise-api/internal/domain/repository"
)

// RedisStatsCache backs the dashboard stats cache with Redis.
type RedisStatsCache struct {
	client *redis.Client
}

// NewRedisStatsCache creates a Redis-backed stats cache
func NewRedisStatsCache(addr, password string, db int) *RedisStatsCache {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	return &RedisStatsCache{client: client}
}

// Ping verifies connectivity to the Redis server
func (c *RedisStatsCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// Close releases the underlying client
func (c *RedisStatsCache) Close() error {
	return c.client.Close()
}

func (c *RedisStatsCache) Get(ctx context.Context, key string) (*repository.DashboardCounts, bool, error) {
	val, err := c.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var counts repository.DashboardCounts
	if err := json.Unmarshal([]byte(val), &counts); err != nil {
		return nil, false, err
	}
	return &counts, true, nil
}

func (c *RedisStatsCache) Set(ctx context.Context, key string, value *repository.DashboardCounts, ttl time.Duration) error {
	if value == nil {
		return nil
	}
	payload, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, payload, ttl).Err()
}
