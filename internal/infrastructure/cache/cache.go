package cache

import (
	"context"
	"time"

	"github.com/dukaops/enterprise-api/internal/domain/repository"
)

// StatsCache caches dashboard aggregates between requests.
type StatsCache interface {
	Get(ctx context.Context, key string) (*repository.DashboardCounts, bool, error)
	Set(ctx context.Context, key string, value *repository.DashboardCounts, ttl time.Duration) error
}

// NoopStatsCache is used when no cache backend is configured; every read
// misses and writes are discarded.
type NoopStatsCache struct{}

func (NoopStatsCache) Get(_ context.Context, _ string) (*repository.DashboardCounts, bool, error) {
	return nil, false, nil
}

func (NoopStatsCache) Set(_ context.Context, _ string, _ *repository.DashboardCounts, _ time.Duration) error {
	return nil
}
