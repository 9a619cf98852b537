package service

import (
	"context"
	"log"
	"time"

	"github.com/dukaops/enterprise-api/internal/domain/repository"
	"github.com/dukaops/enterprise-api/internal/infrastructure/cache"
)

const (
	statsCacheKey = "dashboard:stats"
	statsCacheTTL = 30 * time.Second
)

// DashboardService provides dashboard statistics
type DashboardService struct {
	analyticsRepo repository.AnalyticsRepository
	cache         cache.StatsCache
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(analyticsRepo repository.AnalyticsRepository, statsCache cache.StatsCache) *DashboardService {
	return &DashboardService{
		analyticsRepo: analyticsRepo,
		cache:         statsCache,
	}
}

// GetStats returns the dashboard aggregates, served from cache when a
// fresh copy is available. Cache failures fall through to the database.
func (s *DashboardService) GetStats(ctx context.Context) (*repository.DashboardCounts, error) {
	if cached, ok, err := s.cache.Get(ctx, statsCacheKey); err == nil && ok {
		return cached, nil
	}

	counts, err := s.analyticsRepo.DashboardCounts(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, statsCacheKey, counts, statsCacheTTL); err != nil {
		log.Printf("Warning: failed to cache dashboard stats: %v", err)
	}

	return counts, nil
}
