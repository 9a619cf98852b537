package service

import (
	"context"

	"github.com/dukaops/enterprise-api/internal/domain/entity"
	"github.com/dukaops/enterprise-api/internal/domain/repository"
	"github.com/dukaops/enterprise-api/pkg/apperror"
)

// CatalogService handles products and branches
type CatalogService struct {
	productRepo repository.ProductRepository
	branchRepo  repository.BranchRepository
}

// NewCatalogService creates a new catalog service
func NewCatalogService(productRepo repository.ProductRepository, branchRepo repository.BranchRepository) *CatalogService {
	return &CatalogService{
		productRepo: productRepo,
		branchRepo:  branchRepo,
	}
}

// ListProducts returns all catalog entries.
func (s *CatalogService) ListProducts(ctx context.Context) ([]entity.Product, error) {
	return s.productRepo.List(ctx)
}

// CreateProductInput represents the create product input
type CreateProductInput struct {
	Name     string
	SKU      string
	Barcode  string
	Category string
	Price    float64
	Cost     float64
	Unit     string
}

// CreateProduct adds a catalog entry. A duplicate SKU surfaces as a
// conflict.
func (s *CatalogService) CreateProduct(ctx context.Context, input *CreateProductInput) (*entity.Product, error) {
	if input.Name == "" || input.SKU == "" {
		return nil, apperror.NewBadRequestError("name and sku are required")
	}

	product := &entity.Product{
		Name:     input.Name,
		SKU:      input.SKU,
		Barcode:  input.Barcode,
		Category: input.Category,
		Price:    input.Price,
		Cost:     input.Cost,
		Unit:     input.Unit,
	}
	if product.Unit == "" {
		product.Unit = "pcs"
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// ListBranches returns all branches joined with their country name.
func (s *CatalogService) ListBranches(ctx context.Context) ([]entity.BranchWithCountry, error) {
	return s.branchRepo.ListWithCountry(ctx)
}
