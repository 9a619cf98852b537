package service

import (
	"context"

	"github.com/dukaops/enterprise-api/internal/domain/entity"
	"github.com/dukaops/enterprise-api/internal/domain/repository"
	"github.com/dukaops/enterprise-api/pkg/apperror"
)

// defaultCustomerName labels invoices with no customer attached.
const defaultCustomerName = "Walk-in Customer"

// POSService handles point-of-sale checkout and sales history
type POSService struct {
	checkoutRepo repository.CheckoutRepository
	invoiceRepo  repository.InvoiceRepository
}

// NewPOSService creates a new POS service
func NewPOSService(checkoutRepo repository.CheckoutRepository, invoiceRepo repository.InvoiceRepository) *POSService {
	return &POSService{
		checkoutRepo: checkoutRepo,
		invoiceRepo:  invoiceRepo,
	}
}

// CartItem is one line of a checkout request. Price and quantity are
// trusted as supplied; the total is caller-computed and not recomputed
// against the line sum.
type CartItem struct {
	ProductID uint
	Price     float64
	Quantity  int
}

// CheckoutInput represents the checkout input
type CheckoutInput struct {
	BranchID      uint
	UserID        uint
	CustomerName  string
	Items         []CartItem
	TotalAmount   float64
	PaymentMethod string
}

// Checkout converts a cart into a durable sale: one invoice, its line
// items, the per-line stock decrements and the matching OUT movements,
// all inside one transaction. An empty cart is rejected rather than
// producing an invoice with no lines.
func (s *POSService) Checkout(ctx context.Context, input *CheckoutInput) (uint, error) {
	if input.BranchID == 0 || input.UserID == 0 {
		return 0, apperror.NewBadRequestError("branchId and userId are required")
	}
	if len(input.Items) == 0 {
		return 0, apperror.NewBadRequestError("cart is empty")
	}

	customerName := input.CustomerName
	if customerName == "" {
		customerName = defaultCustomerName
	}

	lines := make([]repository.CheckoutLine, 0, len(input.Items))
	for _, item := range input.Items {
		lines = append(lines, repository.CheckoutLine{
			ProductID: item.ProductID,
			UnitPrice: item.Price,
			Quantity:  item.Quantity,
		})
	}

	return s.checkoutRepo.Execute(ctx, &repository.CheckoutUnit{
		BranchID:      input.BranchID,
		UserID:        input.UserID,
		CustomerName:  customerName,
		TotalAmount:   input.TotalAmount,
		PaymentMethod: input.PaymentMethod,
		Lines:         lines,
	})
}

// History lists recorded invoices, newest first.
func (s *POSService) History(ctx context.Context) ([]entity.Invoice, error) {
	return s.invoiceRepo.ListNewestFirst(ctx)
}
