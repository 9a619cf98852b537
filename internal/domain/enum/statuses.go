package enum

// InvoiceStatus is the lifecycle state of a sale invoice. Invoices are
// created in the paid state and never mutated through the API.
type InvoiceStatus string

const (
	InvoiceStatusPaid     InvoiceStatus = "PAID"
	InvoiceStatusRefunded InvoiceStatus = "REFUNDED"
	InvoiceStatusVoid     InvoiceStatus = "VOID"
)

// ProcurementStatus is the approval state of a procurement request.
type ProcurementStatus string

const (
	ProcurementStatusPending   ProcurementStatus = "PENDING"
	ProcurementStatusApproved  ProcurementStatus = "APPROVED"
	ProcurementStatusRejected  ProcurementStatus = "REJECTED"
	ProcurementStatusCompleted ProcurementStatus = "COMPLETED"
)

// ImportOrderStatus tracks an import order through its delivery pipeline.
type ImportOrderStatus string

const (
	ImportOrderPending        ImportOrderStatus = "Pending"
	ImportOrderProcessing     ImportOrderStatus = "Processing"
	ImportOrderInTransit      ImportOrderStatus = "In Transit"
	ImportOrderAtWarehouse    ImportOrderStatus = "Arrived at Warehouse"
	ImportOrderOutForDelivery ImportOrderStatus = "Out for Delivery"
	ImportOrderDelivered      ImportOrderStatus = "Delivered"
)

// Valid reports whether the status is a known pipeline state.
func (s ImportOrderStatus) Valid() bool {
	switch s {
	case ImportOrderPending, ImportOrderProcessing, ImportOrderInTransit,
		ImportOrderAtWarehouse, ImportOrderOutForDelivery, ImportOrderDelivered:
		return true
	}
	return false
}

// AttendanceType is the direction of a clock event.
type AttendanceType string

const (
	AttendanceIn  AttendanceType = "IN"
	AttendanceOut AttendanceType = "OUT"
)

// Valid reports whether the attendance type is a known direction.
func (t AttendanceType) Valid() bool {
	return t == AttendanceIn || t == AttendanceOut
}
