package repository

import (
	"context"

	"github.com/dukaops/enterprise-api/internal/domain/entity"
)

// CheckoutLine is one cart line as supplied by the point of sale. Unit
// price and quantity are caller-provided and recorded as given.
type CheckoutLine struct {
	ProductID uint
	UnitPrice float64
	Quantity  int
}

// CheckoutUnit is the full input of one checkout transaction.
type CheckoutUnit struct {
	BranchID      uint
	UserID        uint
	CustomerName  string
	TotalAmount   float64
	PaymentMethod string
	Lines         []CheckoutLine
}

// CheckoutRepository persists a checkout unit atomically: one invoice, one
// invoice item per line, a stock decrement per line and a matching OUT
// stock movement. Either all rows exist afterwards or none do.
type CheckoutRepository interface {
	Execute(ctx context.Context, unit *CheckoutUnit) (invoiceID uint, err error)
}

// InvoiceRepository defines read access to recorded sales
type InvoiceRepository interface {
	GetWithItems(ctx context.Context, id uint) (*entity.Invoice, error)
	ListNewestFirst(ctx context.Context) ([]entity.Invoice, error)
}

// StockRepository defines read access to on-hand quantities
type StockRepository interface {
	Get(ctx context.Context, branchID, productID uint) (*entity.Stock, error)
	MovementsByReference(ctx context.Context, reference string) ([]entity.StockMovement, error)
}
