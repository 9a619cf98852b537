package repository

import (
	"context"
	"fmt"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/dukaops/enterprise-api/internal/domain/entity"
	"github.com/dukaops/enterprise-api/internal/domain/enum"
	domainRepo "github.com/dukaops/enterprise-api/internal/domain/repository"
	"github.com/dukaops/enterprise-api/pkg/apperror"
)

// newTestDB opens a private in-memory database and migrates the sales
// schema so repository tests run against real SQL, transactions included.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	err = db.AutoMigrate(
		&entity.Country{},
		&entity.Branch{},
		&entity.Role{},
		&entity.User{},
		&entity.Product{},
		&entity.Stock{},
		&entity.StockMovement{},
		&entity.Invoice{},
		&entity.InvoiceItem{},
	)
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}

	return db
}

func seedProduct(t *testing.T, db *gorm.DB, sku string, price float64) *entity.Product {
	t.Helper()
	product := entity.Product{Name: "Product " + sku, SKU: sku, Price: price, Cost: price / 2, Unit: "pcs"}
	if err := db.Create(&product).Error; err != nil {
		t.Fatalf("seed product: %v", err)
	}
	return &product
}

func seedStock(t *testing.T, db *gorm.DB, branchID, productID uint, qty int) {
	t.Helper()
	if err := db.Create(&entity.Stock{BranchID: branchID, ProductID: productID, Quantity: qty}).Error; err != nil {
		t.Fatalf("seed stock: %v", err)
	}
}

func stockQuantity(t *testing.T, db *gorm.DB, branchID, productID uint) int {
	t.Helper()
	stock, err := NewStockRepository(db).Get(context.Background(), branchID, productID)
	if err != nil {
		t.Fatalf("load stock: %v", err)
	}
	if stock == nil {
		t.Fatalf("no stock row for branch %d product %d", branchID, productID)
	}
	return stock.Quantity
}

func movementsFor(t *testing.T, db *gorm.DB, invoiceID uint) []entity.StockMovement {
	t.Helper()
	reference := fmt.Sprintf("INV-%d", invoiceID)
	movements, err := NewStockRepository(db).MovementsByReference(context.Background(), reference)
	if err != nil {
		t.Fatalf("load movements: %v", err)
	}
	return movements
}

func TestCheckoutCreatesInvoiceItemsAndMovements(t *testing.T) {
	db := newTestDB(t)
	repo := NewCheckoutRepository(db)

	laptop := seedProduct(t, db, "LP-001", 2500000)
	mouse := seedProduct(t, db, "WM-002", 45000)
	seedStock(t, db, 1, laptop.ID, 10)
	seedStock(t, db, 1, mouse.ID, 50)

	invoiceID, err := repo.Execute(context.Background(), &domainRepo.CheckoutUnit{
		BranchID:      1,
		UserID:        4,
		CustomerName:  "Walk-in Customer",
		TotalAmount:   2590000,
		PaymentMethod: "CASH",
		Lines: []domainRepo.CheckoutLine{
			{ProductID: laptop.ID, UnitPrice: 2500000, Quantity: 1},
			{ProductID: mouse.ID, UnitPrice: 45000, Quantity: 2},
		},
	})
	if err != nil {
		t.Fatalf("checkout failed: %v", err)
	}
	if invoiceID == 0 {
		t.Fatalf("expected a non-zero invoice id")
	}

	invoice, err := NewInvoiceRepository(db).GetWithItems(context.Background(), invoiceID)
	if err != nil {
		t.Fatalf("load invoice: %v", err)
	}
	if invoice == nil {
		t.Fatalf("invoice %d not found", invoiceID)
	}
	if invoice.Status != enum.InvoiceStatusPaid {
		t.Fatalf("expected PAID status, got %s", invoice.Status)
	}
	if invoice.TotalAmount != 2590000 {
		t.Fatalf("expected total 2590000, got %v", invoice.TotalAmount)
	}
	if len(invoice.Items) != 2 {
		t.Fatalf("expected 2 invoice items, got %d", len(invoice.Items))
	}
	for _, item := range invoice.Items {
		if item.ProductID == mouse.ID && item.Subtotal != 90000 {
			t.Fatalf("expected mouse subtotal 90000, got %v", item.Subtotal)
		}
	}

	if got := stockQuantity(t, db, 1, laptop.ID); got != 9 {
		t.Fatalf("expected laptop stock 9, got %d", got)
	}
	if got := stockQuantity(t, db, 1, mouse.ID); got != 48 {
		t.Fatalf("expected mouse stock 48, got %d", got)
	}

	movements := movementsFor(t, db, invoiceID)
	if len(movements) != 2 {
		t.Fatalf("expected 2 movements for INV-%d, got %d", invoiceID, len(movements))
	}
	for _, m := range movements {
		if m.Type != enum.MovementOut {
			t.Fatalf("expected OUT movement, got %s", m.Type)
		}
	}
}

func TestCheckoutScenarioExactQuantities(t *testing.T) {
	db := newTestDB(t)
	repo := NewCheckoutRepository(db)

	product := seedProduct(t, db, "SKU-5", 1000)
	seedStock(t, db, 1, product.ID, 10)

	invoiceID, err := repo.Execute(context.Background(), &domainRepo.CheckoutUnit{
		BranchID:      1,
		UserID:        2,
		CustomerName:  "Walk-in Customer",
		TotalAmount:   4000,
		PaymentMethod: "CASH",
		Lines: []domainRepo.CheckoutLine{
			{ProductID: product.ID, UnitPrice: 1000, Quantity: 4},
		},
	})
	if err != nil {
		t.Fatalf("checkout failed: %v", err)
	}

	if got := stockQuantity(t, db, 1, product.ID); got != 6 {
		t.Fatalf("expected stock 6, got %d", got)
	}

	movements := movementsFor(t, db, invoiceID)
	if len(movements) != 1 {
		t.Fatalf("expected 1 movement, got %d", len(movements))
	}
	if movements[0].Quantity != 4 || movements[0].Type != enum.MovementOut {
		t.Fatalf("expected OUT movement of 4, got %s %d", movements[0].Type, movements[0].Quantity)
	}
}

func TestCheckoutUnknownProductRollsBackEverything(t *testing.T) {
	db := newTestDB(t)
	repo := NewCheckoutRepository(db)

	product := seedProduct(t, db, "SKU-OK", 500)
	seedStock(t, db, 1, product.ID, 20)

	_, err := repo.Execute(context.Background(), &domainRepo.CheckoutUnit{
		BranchID:      1,
		UserID:        1,
		CustomerName:  "Walk-in Customer",
		TotalAmount:   1500,
		PaymentMethod: "CASH",
		Lines: []domainRepo.CheckoutLine{
			{ProductID: product.ID, UnitPrice: 500, Quantity: 1},
			{ProductID: 9999, UnitPrice: 1000, Quantity: 1},
		},
	})
	if err == nil {
		t.Fatalf("expected checkout with unknown product to fail")
	}
	if apperror.GetAppError(err).Code != 404 {
		t.Fatalf("expected 404, got %d", apperror.GetAppError(err).Code)
	}

	var invoiceCount, itemCount, movementCount int64
	db.Model(&entity.Invoice{}).Count(&invoiceCount)
	db.Model(&entity.InvoiceItem{}).Count(&itemCount)
	db.Model(&entity.StockMovement{}).Count(&movementCount)
	if invoiceCount != 0 || itemCount != 0 || movementCount != 0 {
		t.Fatalf("expected a clean rollback, got %d invoices %d items %d movements",
			invoiceCount, itemCount, movementCount)
	}

	if got := stockQuantity(t, db, 1, product.ID); got != 20 {
		t.Fatalf("expected stock untouched at 20, got %d", got)
	}
}

func TestCheckoutStockMayGoNegative(t *testing.T) {
	db := newTestDB(t)
	repo := NewCheckoutRepository(db)

	product := seedProduct(t, db, "SKU-LOW", 100)
	seedStock(t, db, 1, product.ID, 1)

	_, err := repo.Execute(context.Background(), &domainRepo.CheckoutUnit{
		BranchID:      1,
		UserID:        1,
		CustomerName:  "Walk-in Customer",
		TotalAmount:   300,
		PaymentMethod: "CASH",
		Lines: []domainRepo.CheckoutLine{
			{ProductID: product.ID, UnitPrice: 100, Quantity: 3},
		},
	})
	if err != nil {
		t.Fatalf("checkout failed: %v", err)
	}

	if got := stockQuantity(t, db, 1, product.ID); got != -2 {
		t.Fatalf("expected stock -2, got %d", got)
	}
}

func TestCheckoutCreatesStockRowWhenAbsent(t *testing.T) {
	db := newTestDB(t)
	repo := NewCheckoutRepository(db)

	product := seedProduct(t, db, "SKU-NEW", 100)

	_, err := repo.Execute(context.Background(), &domainRepo.CheckoutUnit{
		BranchID:      2,
		UserID:        1,
		CustomerName:  "Walk-in Customer",
		TotalAmount:   200,
		PaymentMethod: "CASH",
		Lines: []domainRepo.CheckoutLine{
			{ProductID: product.ID, UnitPrice: 100, Quantity: 2},
		},
	})
	if err != nil {
		t.Fatalf("checkout failed: %v", err)
	}

	if got := stockQuantity(t, db, 2, product.ID); got != -2 {
		t.Fatalf("expected fresh stock row at -2, got %d", got)
	}
}

func TestSequentialCheckoutsAccumulate(t *testing.T) {
	db := newTestDB(t)
	repo := NewCheckoutRepository(db)

	product := seedProduct(t, db, "SKU-SEQ", 100)
	seedStock(t, db, 1, product.ID, 10)

	for i := 0; i < 2; i++ {
		_, err := repo.Execute(context.Background(), &domainRepo.CheckoutUnit{
			BranchID:      1,
			UserID:        1,
			CustomerName:  "Walk-in Customer",
			TotalAmount:   300,
			PaymentMethod: "CASH",
			Lines: []domainRepo.CheckoutLine{
				{ProductID: product.ID, UnitPrice: 100, Quantity: 3},
			},
		})
		if err != nil {
			t.Fatalf("checkout %d failed: %v", i, err)
		}
	}

	var invoiceCount int64
	db.Model(&entity.Invoice{}).Count(&invoiceCount)
	if invoiceCount != 2 {
		t.Fatalf("expected 2 invoices, got %d", invoiceCount)
	}
	if got := stockQuantity(t, db, 1, product.ID); got != 4 {
		t.Fatalf("expected stock 4 after two checkouts, got %d", got)
	}
}
