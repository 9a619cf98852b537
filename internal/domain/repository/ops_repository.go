package repository

import (
	"context"

	"github.com/dukaops/enterprise-api/internal/domain/entity"
)

// ProcurementRepository defines the interface for procurement requests
type ProcurementRepository interface {
	Create(ctx context.Context, request *entity.ProcurementRequest) error
	ListRows(ctx context.Context) ([]entity.ProcurementRequestRow, error)
}

// AttendanceRepository defines the interface for attendance logs
type AttendanceRepository interface {
	Create(ctx context.Context, log *entity.AttendanceLog) error
	ListRows(ctx context.Context) ([]entity.AttendanceLogRow, error)
}

// ImportOrderRepository defines the interface for import orders
type ImportOrderRepository interface {
	Create(ctx context.Context, order *entity.ImportOrder) error
	GetByID(ctx context.Context, id uint) (*entity.ImportOrder, error)
	ListRows(ctx context.Context) ([]entity.ImportOrderRow, error)
	// Patch applies a partial update; only the fields set on the patch are
	// written.
	Patch(ctx context.Context, id uint, patch entity.ImportOrderPatch) error
}

// ExpenseRepository defines the interface for branch expenses
type ExpenseRepository interface {
	Create(ctx context.Context, expense *entity.Expense) error
	List(ctx context.Context) ([]entity.Expense, error)
}
