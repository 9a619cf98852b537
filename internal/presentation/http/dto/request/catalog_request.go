package request

// CreateProductRequest represents the create product payload
type CreateProductRequest struct {
	Name     string  `json:"name" binding:"required"`
	SKU      string  `json:"sku" binding:"required"`
	Barcode  string  `json:"barcode"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
	Cost     float64 `json:"cost"`
	Unit     string  `json:"unit"`
}
