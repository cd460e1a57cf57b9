package reservation

import (
	"context"
	"time"

	"github.com/ShinMK-003/FoodOn/internal/domain"
	"gorm.io/gorm"
)

// Repository handles database operations for reservations.
type Repository interface {
	// Create inserts a new reservation record
	Create(ctx context.Context, r *domain.Reservation) error

	// GetByID retrieves a reservation
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)

	// ListByUser retrieves a user's reservations, newest first
	ListByUser(ctx context.Context, userID int64) ([]domain.Reservation, error)

	// ListAll retrieves every reservation (operator export)
	ListAll(ctx context.Context) ([]domain.Reservation, error)

	// ExpirePending marks pending reservations whose reserved time is older
	// than the cutoff as expired, returning the number of rows touched
	ExpirePending(ctx context.Context, cutoff time.Time) (int64, error)
}

// GormRepository is the GORM implementation of Repository
type GormRepository struct {
	db *gorm.DB
}

func NewGormRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

func (r *GormRepository) Create(ctx context.Context, res *domain.Reservation) error {
	return r.db.WithContext(ctx).Create(res).Error
}

func (r *GormRepository) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	var res domain.Reservation
	err := r.db.WithContext(ctx).First(&res, id).Error
	return &res, err
}

func (r *GormRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Reservation, error) {
	var list []domain.Reservation
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("reserved_at DESC").
		Find(&list).Error
	return list, err
}

func (r *GormRepository) ListAll(ctx context.Context) ([]domain.Reservation, error) {
	var list []domain.Reservation
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&list).Error
	return list, err
}

func (r *GormRepository) ExpirePending(ctx context.Context, cutoff time.Time) (int64, error) {
	result := r.db.WithContext(ctx).Model(&domain.Reservation{}).
		Where("status = ? AND reserved_at < ?", domain.ReservationStatusPending, cutoff).
		Updates(map[string]interface{}{
			"status":     domain.ReservationStatusExpired,
			"updated_at": time.Now(),
		})
	return result.RowsAffected, result.Error
}
