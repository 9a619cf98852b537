package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/dukaops/enterprise-api/internal/application/service"
	"github.com/dukaops/enterprise-api/internal/presentation/http/dto/request"
	"github.com/dukaops/enterprise-api/internal/presentation/http/dto/response"
)

// CatalogHandler handles product and branch HTTP requests
type CatalogHandler struct {
	catalogService *service.CatalogService
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(catalogService *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// ListProducts lists the product catalog
func (h *CatalogHandler) ListProducts(c *gin.Context) {
	products, err := h.catalogService.ListProducts(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, products)
}

// CreateProduct adds a product to the catalog
func (h *CatalogHandler) CreateProduct(c *gin.Context) {
	var req request.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	product, err := h.catalogService.CreateProduct(c.Request.Context(), &service.CreateProductInput{
		Name:     req.Name,
		SKU:      req.SKU,
		Barcode:  req.Barcode,
		Category: req.Category,
		Price:    req.Price,
		Cost:     req.Cost,
		Unit:     req.Unit,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{
		"success": true,
		"id":      product.ID,
	})
}

// ListBranches lists branches with their country names
func (h *CatalogHandler) ListBranches(c *gin.Context) {
	branches, err := h.catalogService.ListBranches(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, branches)
}
