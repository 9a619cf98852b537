package request

// CheckoutItem is one cart line as sent by the POS client. Price and
// quantity are captured as given, not re-validated against the catalog.
type CheckoutItem struct {
	ID       uint    `json:"id"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// CheckoutRequest represents the checkout request payload
type CheckoutRequest struct {
	BranchID      uint           `json:"branchId"`
	UserID        uint           `json:"userId"`
	CustomerName  string         `json:"customerName"`
	Items         []CheckoutItem `json:"items"`
	TotalAmount   float64        `json:"totalAmount"`
	PaymentMethod string         `json:"paymentMethod"`
}
