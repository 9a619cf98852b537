package service

import (
	"context"

	"github.com/dukaops/enterprise-api/internal/domain/entity"
	"github.com/dukaops/enterprise-api/internal/domain/enum"
	"github.com/dukaops/enterprise-api/internal/domain/repository"
	"github.com/dukaops/enterprise-api/pkg/apperror"
)

// ProcurementService handles purchase requests
type ProcurementService struct {
	procurementRepo repository.ProcurementRepository
}

// NewProcurementService creates a new procurement service
func NewProcurementService(procurementRepo repository.ProcurementRepository) *ProcurementService {
	return &ProcurementService{procurementRepo: procurementRepo}
}

// List returns procurement requests joined with requester and branch
// names, newest first.
func (s *ProcurementService) List(ctx context.Context) ([]entity.ProcurementRequestRow, error) {
	return s.procurementRepo.ListRows(ctx)
}

// CreateProcurementInput represents the create procurement request input
type CreateProcurementInput struct {
	BranchID      uint
	UserID        uint
	Title         string
	Description   string
	EstimatedCost float64
}

// Create records a new purchase request in the pending state.
func (s *ProcurementService) Create(ctx context.Context, input *CreateProcurementInput) error {
	if input.Title == "" {
		return apperror.NewBadRequestError("title is required")
	}

	return s.procurementRepo.Create(ctx, &entity.ProcurementRequest{
		BranchID:      input.BranchID,
		UserID:        input.UserID,
		Title:         input.Title,
		Description:   input.Description,
		EstimatedCost: input.EstimatedCost,
		Status:        enum.ProcurementStatusPending,
	})
}

// AttendanceService handles clock in/out events
type AttendanceService struct {
	attendanceRepo repository.AttendanceRepository
}

// NewAttendanceService creates a new attendance service
func NewAttendanceService(attendanceRepo repository.AttendanceRepository) *AttendanceService {
	return &AttendanceService{attendanceRepo: attendanceRepo}
}

// List returns attendance logs joined with user and branch names, newest
// first.
func (s *AttendanceService) List(ctx context.Context) ([]entity.AttendanceLogRow, error) {
	return s.attendanceRepo.ListRows(ctx)
}

// Clock records one clock event for a user.
func (s *AttendanceService) Clock(ctx context.Context, userID uint, clockType enum.AttendanceType) error {
	if userID == 0 {
		return apperror.NewBadRequestError("userId is required")
	}
	if !clockType.Valid() {
		return apperror.NewBadRequestError("type must be IN or OUT")
	}

	return s.attendanceRepo.Create(ctx, &entity.AttendanceLog{
		UserID: userID,
		Type:   clockType,
	})
}

// FinanceService handles branch expenses
type FinanceService struct {
	expenseRepo repository.ExpenseRepository
}

// NewFinanceService creates a new finance service
func NewFinanceService(expenseRepo repository.ExpenseRepository) *FinanceService {
	return &FinanceService{expenseRepo: expenseRepo}
}

// ListExpenses returns recorded expenses, newest first.
func (s *FinanceService) ListExpenses(ctx context.Context) ([]entity.Expense, error) {
	return s.expenseRepo.List(ctx)
}

// CreateExpenseInput represents the create expense input
type CreateExpenseInput struct {
	BranchID    uint
	Category    string
	Amount      float64
	Description string
}

// CreateExpense records a branch operating cost.
func (s *FinanceService) CreateExpense(ctx context.Context, input *CreateExpenseInput) error {
	if input.Amount <= 0 {
		return apperror.NewBadRequestError("amount must be positive")
	}

	return s.expenseRepo.Create(ctx, &entity.Expense{
		BranchID:    input.BranchID,
		Category:    input.Category,
		Amount:      input.Amount,
		Description: input.Description,
	})
}

// UserService handles user directory lookups
type UserService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new user service
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// ListByRole returns id and full name for every user holding the named
// role.
func (s *UserService) ListByRole(ctx context.Context, roleName string) ([]repository.UserSummary, error) {
	return s.userRepo.ListByRoleName(ctx, roleName)
}
