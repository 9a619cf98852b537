package service

import (
	"context"

	"github.com/dukaops/enterprise-api/internal/domain/entity"
	"github.com/dukaops/enterprise-api/internal/domain/enum"
	"github.com/dukaops/enterprise-api/internal/domain/repository"
	"github.com/dukaops/enterprise-api/pkg/apperror"
)

// ImportOrderService handles customer import orders
type ImportOrderService struct {
	importOrderRepo repository.ImportOrderRepository
}

// NewImportOrderService creates a new import order service
func NewImportOrderService(importOrderRepo repository.ImportOrderRepository) *ImportOrderService {
	return &ImportOrderService{importOrderRepo: importOrderRepo}
}

// List returns import orders joined with assigned officer names, newest
// first.
func (s *ImportOrderService) List(ctx context.Context) ([]entity.ImportOrderRow, error) {
	return s.importOrderRepo.ListRows(ctx)
}

// CreateImportOrderInput represents the create import order input
type CreateImportOrderInput struct {
	UserID       uint
	CustomerName string
	OrderDetails string
	TotalAmount  float64
}

// Create records a new import order in the pending state.
func (s *ImportOrderService) Create(ctx context.Context, input *CreateImportOrderInput) error {
	if input.CustomerName == "" {
		return apperror.NewBadRequestError("customerName is required")
	}

	return s.importOrderRepo.Create(ctx, &entity.ImportOrder{
		UserID:       input.UserID,
		CustomerName: input.CustomerName,
		OrderDetails: input.OrderDetails,
		TotalAmount:  input.TotalAmount,
		Status:       enum.ImportOrderPending,
	})
}

// Update applies a partial update to an import order; only the supplied
// fields change.
func (s *ImportOrderService) Update(ctx context.Context, id uint, patch entity.ImportOrderPatch) error {
	if patch.Status != nil && !patch.Status.Valid() {
		return apperror.NewBadRequestError("unknown import order status")
	}
	if patch.Empty() {
		return nil
	}

	order, err := s.importOrderRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if order == nil {
		return apperror.NewNotFoundError("Import order")
	}

	return s.importOrderRepo.Patch(ctx, id, patch)
}
