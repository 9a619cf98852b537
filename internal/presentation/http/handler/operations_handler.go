package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/dukaops/enterprise-api/internal/application/service"
	"github.com/dukaops/enterprise-api/internal/domain/enum"
	"github.com/dukaops/enterprise-api/internal/presentation/http/dto/request"
	"github.com/dukaops/enterprise-api/internal/presentation/http/dto/response"
)

// ProcurementHandler handles purchase request HTTP requests
type ProcurementHandler struct {
	procurementService *service.ProcurementService
}

// NewProcurementHandler creates a new procurement handler
func NewProcurementHandler(procurementService *service.ProcurementService) *ProcurementHandler {
	return &ProcurementHandler{procurementService: procurementService}
}

// List returns purchase requests with requester and branch names
func (h *ProcurementHandler) List(c *gin.Context) {
	rows, err := h.procurementService.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, rows)
}

// Create records a new purchase request
func (h *ProcurementHandler) Create(c *gin.Context) {
	var req request.CreateProcurementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	err := h.procurementService.Create(c.Request.Context(), &service.CreateProcurementInput{
		BranchID:      req.BranchID,
		UserID:        req.UserID,
		Title:         req.Title,
		Description:   req.Description,
		EstimatedCost: req.EstimatedCost,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c)
}

// AttendanceHandler handles staff clock in/out HTTP requests
type AttendanceHandler struct {
	attendanceService *service.AttendanceService
}

// NewAttendanceHandler creates a new attendance handler
func NewAttendanceHandler(attendanceService *service.AttendanceService) *AttendanceHandler {
	return &AttendanceHandler{attendanceService: attendanceService}
}

// List returns attendance logs with staff and branch names
func (h *AttendanceHandler) List(c *gin.Context) {
	rows, err := h.attendanceService.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, rows)
}

// Clock records a clock-in or clock-out event
func (h *AttendanceHandler) Clock(c *gin.Context) {
	var req request.CreateAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	err := h.attendanceService.Clock(c.Request.Context(), req.UserID, enum.AttendanceType(req.Type))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c)
}

// FinanceHandler handles expense HTTP requests
type FinanceHandler struct {
	financeService *service.FinanceService
}

// NewFinanceHandler creates a new finance handler
func NewFinanceHandler(financeService *service.FinanceService) *FinanceHandler {
	return &FinanceHandler{financeService: financeService}
}

// ListExpenses returns recorded branch expenses
func (h *FinanceHandler) ListExpenses(c *gin.Context) {
	expenses, err := h.financeService.ListExpenses(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, expenses)
}

// CreateExpense records a branch operating cost
func (h *FinanceHandler) CreateExpense(c *gin.Context) {
	var req request.CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	err := h.financeService.CreateExpense(c.Request.Context(), &service.CreateExpenseInput{
		BranchID:    req.BranchID,
		Category:    req.Category,
		Amount:      req.Amount,
		Description: req.Description,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c)
}
