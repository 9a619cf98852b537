package repository

import "context"

// DashboardCounts carries the aggregate numbers rendered on the console
// dashboard.
type DashboardCounts struct {
	RetailSalesToday   float64 `json:"retailSalesToday"`
	TotalImportOrders  int64   `json:"totalImportOrders"`
	OrdersInTransit    int64   `json:"ordersInTransit"`
	PendingProcurement int64   `json:"pendingProcurement"`
	ActiveDeliveries   int64   `json:"activeDeliveries"`
	TotalProducts      int64   `json:"totalProducts"`
	TotalUsers         int64   `json:"totalUsers"`
	TotalBranches      int64   `json:"totalBranches"`
}

// AnalyticsRepository defines interface for dashboard aggregation queries
type AnalyticsRepository interface {
	DashboardCounts(ctx context.Context) (*DashboardCounts, error)
}
