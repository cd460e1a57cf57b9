package cart

import (
	"context"

	"github.com/ShinMK-003/FoodOn/internal/domain"
	"gorm.io/gorm"
)

// LineRepository handles database operations for cart lines.
type LineRepository interface {
	// ListByUser retrieves all lines in a user's cart
	ListByUser(ctx context.Context, userID int64) ([]domain.CartLine, error)

	// GetByProduct retrieves the user's line for one product
	GetByProduct(ctx context.Context, userID, productID int64) (*domain.CartLine, error)

	// Create inserts a new line
	Create(ctx context.Context, line *domain.CartLine) error

	// UpdateQuantity overwrites a line's stored quantity
	UpdateQuantity(ctx context.Context, userID, productID int64, quantity int) error

	// DeleteByProduct removes the user's line for one product
	DeleteByProduct(ctx context.Context, userID, productID int64) error

	// DeleteAllByUser removes every line in the user's cart as one atomic
	// batch; either all rows go or none do
	DeleteAllByUser(ctx context.Context, userID int64) error
}

// GormLineRepository is the GORM implementation of LineRepository
type GormLineRepository struct {
	db *gorm.DB
}

func NewGormLineRepository(db *gorm.DB) *GormLineRepository {
	return &GormLineRepository{db: db}
}

func (r *GormLineRepository) ListByUser(ctx context.Context, userID int64) ([]domain.CartLine, error) {
	var lines []domain.CartLine
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&lines).Error
	return lines, err
}

func (r *GormLineRepository) GetByProduct(ctx context.Context, userID, productID int64) (*domain.CartLine, error) {
	var line domain.CartLine
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		First(&line).Error
	return &line, err
}

func (r *GormLineRepository) Create(ctx context.Context, line *domain.CartLine) error {
	return r.db.WithContext(ctx).Create(line).Error
}

func (r *GormLineRepository) UpdateQuantity(ctx context.Context, userID, productID int64, quantity int) error {
	return r.db.WithContext(ctx).Model(&domain.CartLine{}).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Update("quantity", quantity).Error
}

func (r *GormLineRepository) DeleteByProduct(ctx context.Context, userID, productID int64) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Delete(&domain.CartLine{}).Error
}

func (r *GormLineRepository) DeleteAllByUser(ctx context.Context, userID int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Where("user_id = ?", userID).Delete(&domain.CartLine{}).Error
	})
}
