package entity

import (
	"time"

	"github.com/dukaops/enterprise-api/internal/domain/enum"
)

// Invoice is one completed point-of-sale transaction. An invoice and its
// items are written together inside the checkout transaction and are
// immutable afterwards.
type Invoice struct {
	ID            uint               `gorm:"primaryKey" json:"id"`
	BranchID      uint               `gorm:"index;not null" json:"branch_id"`
	UserID        uint               `gorm:"index;not null" json:"user_id"`
	CustomerName  string             `gorm:"size:255" json:"customer_name"`
	TotalAmount   float64            `gorm:"not null" json:"total_amount"`
	PaymentMethod string             `gorm:"size:50" json:"payment_method"`
	Status        enum.InvoiceStatus `gorm:"size:20;default:'PAID'" json:"status"`
	CreatedAt     time.Time          `json:"created_at"`

	Branch Branch        `gorm:"foreignKey:BranchID" json:"-"`
	User   User          `gorm:"foreignKey:UserID" json:"-"`
	Items  []InvoiceItem `gorm:"foreignKey:InvoiceID" json:"items,omitempty"`
}

// TableName returns the table name for the Invoice model
func (Invoice) TableName() string {
	return "invoices"
}

// InvoiceItem is one line of a sale. Quantity and unit price are captured
// at sale time; the subtotal is quantity times unit price and is never
// re-derived from the live product record.
type InvoiceItem struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	InvoiceID uint    `gorm:"index;not null" json:"invoice_id"`
	ProductID uint    `gorm:"index;not null" json:"product_id"`
	Quantity  int     `gorm:"not null" json:"quantity"`
	UnitPrice float64 `gorm:"not null" json:"unit_price"`
	Subtotal  float64 `gorm:"not null" json:"subtotal"`

	Invoice Invoice `gorm:"foreignKey:InvoiceID" json:"-"`
	Product Product `gorm:"foreignKey:ProductID" json:"-"`
}

// TableName returns the table name for the InvoiceItem model
func (InvoiceItem) TableName() string {
	return "invoice_items"
}
