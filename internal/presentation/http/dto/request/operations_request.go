package request

// CreateProcurementRequest represents the create procurement payload
type CreateProcurementRequest struct {
	BranchID      uint    `json:"branchId"`
	UserID        uint    `json:"userId"`
	Title         string  `json:"title" binding:"required"`
	Description   string  `json:"description"`
	EstimatedCost float64 `json:"estimatedCost"`
}

// CreateAttendanceRequest represents the clock in/out payload
type CreateAttendanceRequest struct {
	UserID uint   `json:"userId"`
	Type   string `json:"type"`
}

// CreateImportOrderRequest represents the create import order payload
type CreateImportOrderRequest struct {
	UserID       uint    `json:"userId"`
	CustomerName string  `json:"customerName"`
	OrderDetails string  `json:"orderDetails"`
	TotalAmount  float64 `json:"totalAmount"`
}

// PatchImportOrderRequest carries a partial import order update; absent
// fields are left untouched.
type PatchImportOrderRequest struct {
	Status                *string `json:"status"`
	AssignedProcurementID *uint   `json:"assigned_procurement_id"`
	AssignedLogisticsID   *uint   `json:"assigned_logistics_id"`
}

// CreateExpenseRequest represents the create expense payload
type CreateExpenseRequest struct {
	BranchID    uint    `json:"branchId"`
	Category    string  `json:"category"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
}
