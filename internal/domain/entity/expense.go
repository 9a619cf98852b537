package entity

import "time"

// Expense is a branch operating cost recorded for the finance view.
type Expense struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	BranchID    uint      `gorm:"index" json:"branch_id"`
	Category    string    `gorm:"size:100" json:"category"`
	Amount      float64   `gorm:"not null" json:"amount"`
	Description string    `gorm:"type:text" json:"description"`
	ApprovedBy  *uint     `json:"approved_by,omitempty"`
	CreatedAt   time.Time `json:"created_at"`

	Branch Branch `gorm:"foreignKey:BranchID" json:"-"`
}

// TableName returns the table name for the Expense model
func (Expense) TableName() string {
	return "expenses"
}
