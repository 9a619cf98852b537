package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/dukaops/enterprise-api/internal/domain/entity"
	"github.com/dukaops/enterprise-api/internal/domain/enum"
	domainRepo "github.com/dukaops/enterprise-api/internal/domain/repository"
)

type analyticsRepository struct {
	db *gorm.DB
}

// NewAnalyticsRepository creates a new analytics repository
func NewAnalyticsRepository(db *gorm.DB) domainRepo.AnalyticsRepository {
	return &analyticsRepository{db: db}
}

func (r *analyticsRepository) DashboardCounts(ctx context.Context) (*domainRepo.DashboardCounts, error) {
	counts := &domainRepo.DashboardCounts{}
	db := r.db.WithContext(ctx)

	now := time.Now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	var salesToday *float64
	err := db.Model(&entity.Invoice{}).
		Select("SUM(total_amount)").
		Where("created_at >= ?", startOfDay).
		Scan(&salesToday).Error
	if err != nil {
		return nil, err
	}
	if salesToday != nil {
		counts.RetailSalesToday = *salesToday
	}

	if err := db.Model(&entity.ImportOrder{}).Count(&counts.TotalImportOrders).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&entity.ImportOrder{}).
		Where("status = ?", enum.ImportOrderInTransit).
		Count(&counts.OrdersInTransit).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&entity.ImportOrder{}).
		Where("status = ?", enum.ImportOrderOutForDelivery).
		Count(&counts.ActiveDeliveries).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&entity.ProcurementRequest{}).
		Where("status = ?", enum.ProcurementStatusPending).
		Count(&counts.PendingProcurement).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&entity.Product{}).Count(&counts.TotalProducts).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&entity.User{}).Count(&counts.TotalUsers).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&entity.Branch{}).Count(&counts.TotalBranches).Error; err != nil {
		return nil, err
	}

	return counts, nil
}
