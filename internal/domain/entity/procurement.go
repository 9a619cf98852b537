package entity

import (
	"time"

	"github.com/dukaops/enterprise-api/internal/domain/enum"
)

// ProcurementRequest is a purchase request raised by a branch.
type ProcurementRequest struct {
	ID            uint                   `gorm:"primaryKey" json:"id"`
	BranchID      uint                   `gorm:"index" json:"branch_id"`
	UserID        uint                   `gorm:"index" json:"user_id"`
	Title         string                 `gorm:"size:255;not null" json:"title"`
	Description   string                 `gorm:"type:text" json:"description"`
	EstimatedCost float64                `json:"estimated_cost"`
	Status        enum.ProcurementStatus `gorm:"size:20;default:'PENDING'" json:"status"`
	ApprovedBy    *uint                  `json:"approved_by,omitempty"`
	CreatedAt     time.Time              `json:"created_at"`

	Branch Branch `gorm:"foreignKey:BranchID" json:"-"`
	User   User   `gorm:"foreignKey:UserID" json:"-"`
}

// TableName returns the table name for the ProcurementRequest model
func (ProcurementRequest) TableName() string {
	return "procurement_requests"
}

// ProcurementRequestRow is the list projection joined with requester and
// branch names.
type ProcurementRequestRow struct {
	ProcurementRequest
	RequesterName string `json:"requester_name"`
	BranchName    string `json:"branch_name"`
}
