package entity

import "time"

// Product is a catalog entry. Products are global; per-branch on-hand
// quantities live in the stock table.
type Product struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	SKU       string    `gorm:"size:100;uniqueIndex;not null" json:"sku"`
	Barcode   string    `gorm:"size:100" json:"barcode"`
	Category  string    `gorm:"size:100" json:"category"`
	Price     float64   `gorm:"not null" json:"price"`
	Cost      float64   `gorm:"not null" json:"cost"`
	Unit      string    `gorm:"size:50;default:'pcs'" json:"unit"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the table name for the Product model
func (Product) TableName() string {
	return "products"
}
