package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/dukaops/enterprise-api/internal/application/service"
	"github.com/dukaops/enterprise-api/internal/presentation/http/dto/request"
	"github.com/dukaops/enterprise-api/internal/presentation/http/dto/response"
)

// POSHandler handles point-of-sale HTTP requests
type POSHandler struct {
	posService *service.POSService
}

// NewPOSHandler creates a new POS handler
func NewPOSHandler(posService *service.POSService) *POSHandler {
	return &POSHandler{posService: posService}
}

// Checkout converts a cart into an invoice
func (h *POSHandler) Checkout(c *gin.Context) {
	var req request.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	items := make([]service.CartItem, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, service.CartItem{
			ProductID: item.ID,
			Price:     item.Price,
			Quantity:  item.Quantity,
		})
	}

	invoiceID, err := h.posService.Checkout(c.Request.Context(), &service.CheckoutInput{
		BranchID:      req.BranchID,
		UserID:        req.UserID,
		CustomerName:  req.CustomerName,
		Items:         items,
		TotalAmount:   req.TotalAmount,
		PaymentMethod: req.PaymentMethod,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{
		"success":   true,
		"invoiceId": invoiceID,
	})
}

// History lists past invoices, newest first
func (h *POSHandler) History(c *gin.Context) {
	invoices, err := h.posService.History(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, invoices)
}
