package catalog

import (
	"context"

	"github.com/ShinMK-003/FoodOn/internal/domain"
	"gorm.io/gorm"
)

// ProductRepository handles product reads. Products are maintained
// out-of-band, so there is no client-facing write path here.
type ProductRepository interface {
	// List retrieves the full product set ordered by id
	List(ctx context.Context) ([]domain.Product, error)

	// ListLimit retrieves at most limit products (home screen subset)
	ListLimit(ctx context.Context, limit int) ([]domain.Product, error)

	// GetByID retrieves a single product
	GetByID(ctx context.Context, id int64) (*domain.Product, error)
}

// GormProductRepository is the GORM implementation of ProductRepository
type GormProductRepository struct {
	db *gorm.DB
}

func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

func (r *GormProductRepository) List(ctx context.Context) ([]domain.Product, error) {
	var products []domain.Product
	err := r.db.WithContext(ctx).Order("id ASC").Find(&products).Error
	return products, err
}

func (r *GormProductRepository) ListLimit(ctx context.Context, limit int) ([]domain.Product, error) {
	var products []domain.Product
	err := r.db.WithContext(ctx).Order("id ASC").Limit(limit).Find(&products).Error
	return products, err
}

func (r *GormProductRepository) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	var p domain.Product
	err := r.db.WithContext(ctx).First(&p, id).Error
	return &p, err
}
