package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/dukaops/enterprise-api/internal/domain/entity"
	"github.com/dukaops/enterprise-api/internal/domain/enum"
	domainRepo "github.com/dukaops/enterprise-api/internal/domain/repository"
	"github.com/dukaops/enterprise-api/pkg/apperror"
)

type checkoutRepository struct {
	db *gorm.DB
}

// NewCheckoutRepository creates a new checkout repository
func NewCheckoutRepository(db *gorm.DB) domainRepo.CheckoutRepository {
	return &checkoutRepository{db: db}
}

// Execute writes one checkout unit inside a single database transaction.
// Concurrent checkouts against the same (branch, product) are safe because
// the stock adjustment is a single INSERT ... ON CONFLICT DO UPDATE
// statement, never a read followed by a write.
func (r *checkoutRepository) Execute(ctx context.Context, unit *domainRepo.CheckoutUnit) (uint, error) {
	var invoiceID uint

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := verifyProductsExist(tx, unit.Lines); err != nil {
			return err
		}

		invoice := entity.Invoice{
			BranchID:      unit.BranchID,
			UserID:        unit.UserID,
			CustomerName:  unit.CustomerName,
			TotalAmount:   unit.TotalAmount,
			PaymentMethod: unit.PaymentMethod,
			Status:        enum.InvoiceStatusPaid,
		}
		if err := tx.Omit(clause.Associations).Create(&invoice).Error; err != nil {
			return err
		}

		reference := fmt.Sprintf("INV-%d", invoice.ID)

		for _, line := range unit.Lines {
			item := entity.InvoiceItem{
				InvoiceID: invoice.ID,
				ProductID: line.ProductID,
				Quantity:  line.Quantity,
				UnitPrice: line.UnitPrice,
				Subtotal:  line.UnitPrice * float64(line.Quantity),
			}
			if err := tx.Omit(clause.Associations).Create(&item).Error; err != nil {
				return err
			}

			if err := applyStockDelta(tx, unit.BranchID, line.ProductID, -line.Quantity); err != nil {
				return err
			}

			movement := entity.StockMovement{
				BranchID:  unit.BranchID,
				ProductID: line.ProductID,
				Type:      enum.MovementOut,
				Quantity:  line.Quantity,
				Reference: reference,
			}
			if err := tx.Omit(clause.Associations).Create(&movement).Error; err != nil {
				return err
			}
		}

		invoiceID = invoice.ID
		return nil
	})
	if err != nil {
		return 0, err
	}

	return invoiceID, nil
}

// verifyProductsExist checks every referenced product in one query so a
// disconnected product id aborts the unit before any row is written.
func verifyProductsExist(tx *gorm.DB, lines []domainRepo.CheckoutLine) error {
	unique := make(map[uint]struct{}, len(lines))
	ids := make([]uint, 0, len(lines))
	for _, line := range lines {
		if _, seen := unique[line.ProductID]; seen {
			continue
		}
		unique[line.ProductID] = struct{}{}
		ids = append(ids, line.ProductID)
	}

	var found int64
	if err := tx.Model(&entity.Product{}).Where("id IN ?", ids).Count(&found).Error; err != nil {
		return err
	}
	if found != int64(len(ids)) {
		return apperror.NewNotFoundError("Product")
	}
	return nil
}

// applyStockDelta adjusts the (branch, product) stock row in one atomic
// statement: the row is created at the delta when absent, otherwise the
// delta is added to the existing quantity. No floor is enforced, the
// quantity may go negative.
func applyStockDelta(tx *gorm.DB, branchID, productID uint, delta int) error {
	stock := entity.Stock{
		BranchID:  branchID,
		ProductID: productID,
		Quantity:  delta,
	}
	return tx.Omit(clause.Associations).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "branch_id"}, {Name: "product_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"quantity": gorm.Expr("stocks.quantity + excluded.quantity"),
		}),
	}).Create(&stock).Error
}

type invoiceRepository struct {
	db *gorm.DB
}

// NewInvoiceRepository creates a new invoice repository
func NewInvoiceRepository(db *gorm.DB) domainRepo.InvoiceRepository {
	return &invoiceRepository{db: db}
}

func (r *invoiceRepository) GetWithItems(ctx context.Context, id uint) (*entity.Invoice, error) {
	var invoice entity.Invoice
	err := r.db.WithContext(ctx).Preload("Items").First(&invoice, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &invoice, err
}

func (r *invoiceRepository) ListNewestFirst(ctx context.Context) ([]entity.Invoice, error) {
	var invoices []entity.Invoice
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&invoices).Error
	return invoices, err
}

type stockRepository struct {
	db *gorm.DB
}

// NewStockRepository creates a new stock repository
func NewStockRepository(db *gorm.DB) domainRepo.StockRepository {
	return &stockRepository{db: db}
}

func (r *stockRepository) Get(ctx context.Context, branchID, productID uint) (*entity.Stock, error) {
	var stock entity.Stock
	err := r.db.WithContext(ctx).
		Where("branch_id = ? AND product_id = ?", branchID, productID).
		First(&stock).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &stock, err
}

func (r *stockRepository) MovementsByReference(ctx context.Context, reference string) ([]entity.StockMovement, error) {
	var movements []entity.StockMovement
	err := r.db.WithContext(ctx).
		Where("reference = ?", reference).
		Order("id ASC").
		Find(&movements).Error
	return movements, err
}
