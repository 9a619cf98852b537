package entity

import (
	"time"

	"github.com/dukaops/enterprise-api/internal/domain/enum"
)

// ImportOrder is a customer import request tracked through the delivery
// pipeline and assignable to procurement and logistics officers.
type ImportOrder struct {
	ID                    uint                   `gorm:"primaryKey" json:"id"`
	UserID                uint                   `gorm:"index" json:"user_id"`
	CustomerName          string                 `gorm:"size:255" json:"customer_name"`
	OrderDetails          string                 `gorm:"type:text" json:"order_details"`
	TotalAmount           float64                `json:"total_amount"`
	Status                enum.ImportOrderStatus `gorm:"size:50;default:'Pending'" json:"status"`
	AssignedProcurementID *uint                  `json:"assigned_procurement_id,omitempty"`
	AssignedLogisticsID   *uint                  `json:"assigned_logistics_id,omitempty"`
	CreatedAt             time.Time              `json:"created_at"`

	User               User  `gorm:"foreignKey:UserID" json:"-"`
	ProcurementOfficer *User `gorm:"foreignKey:AssignedProcurementID" json:"-"`
	LogisticsOfficer   *User `gorm:"foreignKey:AssignedLogisticsID" json:"-"`
}

// TableName returns the table name for the ImportOrder model
func (ImportOrder) TableName() string {
	return "import_orders"
}

// ImportOrderRow is the list projection joined with the names of the
// assigned officers.
type ImportOrderRow struct {
	ImportOrder
	ProcurementOfficer string `json:"procurement_officer"`
	LogisticsOfficer   string `json:"logistics_officer"`
}

// ImportOrderPatch carries a partial update; only non-nil fields are
// applied.
type ImportOrderPatch struct {
	Status                *enum.ImportOrderStatus
	AssignedProcurementID *uint
	AssignedLogisticsID   *uint
}

// Empty reports whether the patch changes nothing.
func (p ImportOrderPatch) Empty() bool {
	return p.Status == nil && p.AssignedProcurementID == nil && p.AssignedLogisticsID == nil
}
