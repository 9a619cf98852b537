package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/dukaops/enterprise-api/internal/application/service"
	"github.com/dukaops/enterprise-api/internal/domain/entity"
	"github.com/dukaops/enterprise-api/internal/domain/enum"
	"github.com/dukaops/enterprise-api/internal/presentation/http/dto/request"
	"github.com/dukaops/enterprise-api/internal/presentation/http/dto/response"
)

// ImportOrderHandler handles import order HTTP requests
type ImportOrderHandler struct {
	importOrderService *service.ImportOrderService
}

// NewImportOrderHandler creates a new import order handler
func NewImportOrderHandler(importOrderService *service.ImportOrderService) *ImportOrderHandler {
	return &ImportOrderHandler{importOrderService: importOrderService}
}

// List returns import orders with assigned officer names
func (h *ImportOrderHandler) List(c *gin.Context) {
	rows, err := h.importOrderService.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, rows)
}

// Create records a new import order in the pending state
func (h *ImportOrderHandler) Create(c *gin.Context) {
	var req request.CreateImportOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	err := h.importOrderService.Create(c.Request.Context(), &service.CreateImportOrderInput{
		UserID:       req.UserID,
		CustomerName: req.CustomerName,
		OrderDetails: req.OrderDetails,
		TotalAmount:  req.TotalAmount,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c)
}

// Update applies a partial update to an import order
func (h *ImportOrderHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid order id")
		return
	}

	var req request.PatchImportOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	patch := entity.ImportOrderPatch{
		AssignedProcurementID: req.AssignedProcurementID,
		AssignedLogisticsID:   req.AssignedLogisticsID,
	}
	if req.Status != nil {
		status := enum.ImportOrderStatus(*req.Status)
		patch.Status = &status
	}

	err = h.importOrderService.Update(c.Request.Context(), uint(id), patch)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c)
}
