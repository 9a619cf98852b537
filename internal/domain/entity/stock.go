package entity

import (
	"time"

	"github.com/dukaops/enterprise-api/internal/domain/enum"
)

// Stock is the on-hand quantity of one product at one branch. Exactly one
// row exists per (branch, product) pair; the quantity may go negative when
// a sale outruns the recorded stock, no floor is enforced.
type Stock struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	BranchID  uint      `gorm:"uniqueIndex:idx_stocks_branch_product;not null" json:"branch_id"`
	ProductID uint      `gorm:"uniqueIndex:idx_stocks_branch_product;not null" json:"product_id"`
	Quantity  int       `gorm:"default:0" json:"quantity"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Branch  Branch  `gorm:"foreignKey:BranchID" json:"-"`
	Product Product `gorm:"foreignKey:ProductID" json:"-"`
}

// TableName returns the table name for the Stock model
func (Stock) TableName() string {
	return "stocks"
}

// StockMovement is one append-only ledger entry recording a typed quantity
// change against a (branch, product) pair. Rows are never updated.
type StockMovement struct {
	ID        uint              `gorm:"primaryKey" json:"id"`
	BranchID  uint              `gorm:"index;not null" json:"branch_id"`
	ProductID uint              `gorm:"index;not null" json:"product_id"`
	Type      enum.MovementType `gorm:"size:20;not null" json:"type"`
	Quantity  int               `gorm:"not null" json:"quantity"`
	Reference string            `gorm:"size:100" json:"reference_id"`
	Notes     string            `gorm:"type:text" json:"notes"`
	CreatedAt time.Time         `json:"created_at"`

	Branch  Branch  `gorm:"foreignKey:BranchID" json:"-"`
	Product Product `gorm:"foreignKey:ProductID" json:"-"`
}

// TableName returns the table name for the StockMovement model
func (StockMovement) TableName() string {
	return "stock_movements"
}
