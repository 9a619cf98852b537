package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/dukaops/enterprise-api/internal/domain/entity"
	domainRepo "github.com/dukaops/enterprise-api/internal/domain/repository"
)

type procurementRepository struct {
	db *gorm.DB
}

// NewProcurementRepository creates a new procurement repository
func NewProcurementRepository(db *gorm.DB) domainRepo.ProcurementRepository {
	return &procurementRepository{db: db}
}

func (r *procurementRepository) Create(ctx context.Context, request *entity.ProcurementRequest) error {
	return r.db.WithContext(ctx).Create(request).Error
}

func (r *procurementRepository) ListRows(ctx context.Context) ([]entity.ProcurementRequestRow, error) {
	var rows []entity.ProcurementRequestRow
	err := r.db.WithContext(ctx).
		Table("procurement_requests").
		Select("procurement_requests.*, users.full_name AS requester_name, branches.name AS branch_name").
		Joins("JOIN users ON users.id = procurement_requests.user_id").
		Joins("JOIN branches ON branches.id = procurement_requests.branch_id").
		Order("procurement_requests.created_at DESC").
		Scan(&rows).Error
	return rows, err
}

type attendanceRepository struct {
	db *gorm.DB
}

// NewAttendanceRepository creates a new attendance repository
func NewAttendanceRepository(db *gorm.DB) domainRepo.AttendanceRepository {
	return &attendanceRepository{db: db}
}

func (r *attendanceRepository) Create(ctx context.Context, log *entity.AttendanceLog) error {
	return r.db.WithContext(ctx).Create(log).Error
}

func (r *attendanceRepository) ListRows(ctx context.Context) ([]entity.AttendanceLogRow, error) {
	var rows []entity.AttendanceLogRow
	err := r.db.WithContext(ctx).
		Table("attendance_logs").
		Select("attendance_logs.*, users.full_name AS full_name, branches.name AS branch_name").
		Joins("JOIN users ON users.id = attendance_logs.user_id").
		Joins("JOIN branches ON branches.id = users.branch_id").
		Order("attendance_logs.timestamp DESC").
		Scan(&rows).Error
	return rows, err
}

type importOrderRepository struct {
	db *gorm.DB
}

// NewImportOrderRepository creates a new import order repository
func NewImportOrderRepository(db *gorm.DB) domainRepo.ImportOrderRepository {
	return &importOrderRepository{db: db}
}

func (r *importOrderRepository) Create(ctx context.Context, order *entity.ImportOrder) error {
	return r.db.WithContext(ctx).Create(order).Error
}

func (r *importOrderRepository) GetByID(ctx context.Context, id uint) (*entity.ImportOrder, error) {
	var order entity.ImportOrder
	err := r.db.WithContext(ctx).First(&order, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &order, err
}

func (r *importOrderRepository) ListRows(ctx context.Context) ([]entity.ImportOrderRow, error) {
	var rows []entity.ImportOrderRow
	err := r.db.WithContext(ctx).
		Table("import_orders").
		Select("import_orders.*, p.full_name AS procurement_officer, l.full_name AS logistics_officer").
		Joins("LEFT JOIN users p ON p.id = import_orders.assigned_procurement_id").
		Joins("LEFT JOIN users l ON l.id = import_orders.assigned_logistics_id").
		Order("import_orders.created_at DESC").
		Scan(&rows).Error
	return rows, err
}

func (r *importOrderRepository) Patch(ctx context.Context, id uint, patch entity.ImportOrderPatch) error {
	if patch.Empty() {
		return nil
	}

	updates := make(map[string]interface{}, 3)
	if patch.Status != nil {
		updates["status"] = *patch.Status
	}
	if patch.AssignedProcurementID != nil {
		updates["assigned_procurement_id"] = *patch.AssignedProcurementID
	}
	if patch.AssignedLogisticsID != nil {
		updates["assigned_logistics_id"] = *patch.AssignedLogisticsID
	}

	return r.db.WithContext(ctx).
		Model(&entity.ImportOrder{}).
		Where("id = ?", id).
		Updates(updates).Error
}

type expenseRepository struct {
	db *gorm.DB
}

// NewExpenseRepository creates a new expense repository
func NewExpenseRepository(db *gorm.DB) domainRepo.ExpenseRepository {
	return &expenseRepository{db: db}
}

func (r *expenseRepository) Create(ctx context.Context, expense *entity.Expense) error {
	return r.db.WithContext(ctx).Create(expense).Error
}

func (r *expenseRepository) List(ctx context.Context) ([]entity.Expense, error) {
	var expenses []entity.Expense
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&expenses).Error
	return expenses, err
}
