package auth

import (
	"context"
	"time"

	"github.com/ShinMK-003/FoodOn/internal/domain"
	"gorm.io/gorm"
)

// UserRepository handles the account rows auth owns: creation, credential
// lookup and password maintenance.
type UserRepository interface {
	// GetByID retrieves an account
	GetByID(ctx context.Context, id int64) (*domain.UserProfile, error)

	// GetByEmail retrieves an account by its (unique) email
	GetByEmail(ctx context.Context, email string) (*domain.UserProfile, error)

	// Create inserts a new account
	Create(ctx context.Context, u *domain.UserProfile) error

	// TouchLastLogin stamps a successful sign-in
	TouchLastLogin(ctx context.Context, id int64) error

	// CreateReset inserts a password-reset token
	CreateReset(ctx context.Context, r *domain.PasswordReset) error
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

func (r *GormUserRepository) GetByEmail(ctx context.Context, email string) (*domain.UserProfile, error) {
	var u domain.UserProfile
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&u).Error
	return &u, err
}

func (r *GormUserRepository) Create(ctx context.Context, u *domain.UserProfile) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *GormUserRepository) TouchLastLogin(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Model(&domain.UserProfile{}).
		Where("id = ?", id).
		Update("last_login", time.Now()).Error
}

func (r *GormUserRepository) CreateReset(ctx context.Context, reset *domain.PasswordReset) error {
	return r.db.WithContext(ctx).Create(reset).Error
}
