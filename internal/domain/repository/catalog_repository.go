package repository

import (
	"context"

	"github.com/dukaops/enterprise-api/internal/domain/entity"
)

// ProductRepository defines the interface for catalog data operations
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id uint) (*entity.Product, error)
	List(ctx context.Context) ([]entity.Product, error)
}

// BranchRepository defines the interface for branch data operations
type BranchRepository interface {
	ListWithCountry(ctx context.Context) ([]entity.BranchWithCountry, error)
}
