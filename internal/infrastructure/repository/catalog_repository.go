package repository

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/dukaops/enterprise-api/internal/domain/entity"
	domainRepo "github.com/dukaops/enterprise-api/internal/domain/repository"
	"github.com/dukaops/enterprise-api/pkg/apperror"
)

type productRepository struct {
	db *gorm.DB
}

// NewProductRepository creates a new product repository
func NewProductRepository(db *gorm.DB) domainRepo.ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) Create(ctx context.Context, product *entity.Product) error {
	err := r.db.WithContext(ctx).Create(product).Error
	if err != nil && isUniqueViolation(err) {
		return apperror.NewConflictError("A product with this SKU already exists")
	}
	return err
}

func (r *productRepository) GetByID(ctx context.Context, id uint) (*entity.Product, error) {
	var product entity.Product
	err := r.db.WithContext(ctx).First(&product, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &product, err
}

func (r *productRepository) List(ctx context.Context) ([]entity.Product, error) {
	var products []entity.Product
	err := r.db.WithContext(ctx).Order("id ASC").Find(&products).Error
	return products, err
}

// isUniqueViolation detects a unique-constraint failure without tying the
// caller to one driver's error type.
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "unique constraint")
}

type branchRepository struct {
	db *gorm.DB
}

// NewBranchRepository creates a new branch repository
func NewBranchRepository(db *gorm.DB) domainRepo.BranchRepository {
	return &branchRepository{db: db}
}

func (r *branchRepository) ListWithCountry(ctx context.Context) ([]entity.BranchWithCountry, error) {
	var branches []entity.BranchWithCountry
	err := r.db.WithContext(ctx).
		Table("branches").
		Select("branches.id, branches.country_id, branches.name, branches.location, countries.name AS country_name").
		Joins("JOIN countries ON countries.id = branches.country_id").
		Order("branches.id ASC").
		Scan(&branches).Error
	return branches, err
}
