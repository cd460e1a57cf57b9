package profile

import (
	"context"

	"github.com/ShinMK-003/FoodOn/internal/domain"
	"gorm.io/gorm"
)

// UserRepository handles user profile reads and the field-level updates the
// profile screen performs.
type UserRepository interface {
	// GetByID retrieves a profile
	GetByID(ctx context.Context, id int64) (*domain.UserProfile, error)

	// UpdateFields applies a partial update to the profile row
	UpdateFields(ctx context.Context, id int64, fields map[string]interface{}) error
}

// FavoriteRepository handles database operations for favorites entries.
type FavoriteRepository interface {
	// ListByUser retrieves the user's favorites set
	ListByUser(ctx context.Context, userID int64) ([]domain.FavoriteEntry, error)

	// GetByProduct retrieves the user's entry for one product
	GetByProduct(ctx context.Context, userID, productID int64) (*domain.FavoriteEntry, error)

	// Create inserts a new entry
	Create(ctx context.Context, entry *domain.FavoriteEntry) error

	// DeleteByProduct removes the user's entry for one product
	DeleteByProduct(ctx context.Context, userID, productID int64) error
}

// GormUserRepository is the GORM implementation of UserRepository
type GormUserRepository struct {
	db *gorm.DB
}

func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

func (r *GormUserRepository) GetByID(ctx context.Context, id int64) (*domain.UserProfile, error) {
	var u domain.UserProfile
	err := r.db.WithContext(ctx).First(&u, id).Error
	return &u, err
}

func (r *GormUserRepository) UpdateFields(ctx context.Context, id int64, fields map[string]interface{}) error {
	return r.db.WithContext(ctx).Model(&domain.UserProfile{}).
		Where("id = ?", id).
		Updates(fields).Error
}

// GormFavoriteRepository is the GORM implementation of FavoriteRepository
type GormFavoriteRepository struct {
	db *gorm.DB
}

func NewGormFavoriteRepository(db *gorm.DB) *GormFavoriteRepository {
	return &GormFavoriteRepository{db: db}
}

func (r *GormFavoriteRepository) ListByUser(ctx context.Context, userID int64) ([]domain.FavoriteEntry, error) {
	var entries []domain.FavoriteEntry
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&entries).Error
	return entries, err
}

func (r *GormFavoriteRepository) GetByProduct(ctx context.Context, userID, productID int64) (*domain.FavoriteEntry, error) {
	var entry domain.FavoriteEntry
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		First(&entry).Error
	return &entry, err
}

func (r *GormFavoriteRepository) Create(ctx context.Context, entry *domain.FavoriteEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *GormFavoriteRepository) DeleteByProduct(ctx context.Context, userID, productID int64) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Delete(&domain.FavoriteEntry{}).Error
}
