package cart

import (
	"context"
	"errors"

	"github.com/ShinMK-003/FoodOn/internal/domain"
	"github.com/ShinMK-003/FoodOn/pkg/common"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service maintains a user's cart. One line per product: adding an item
// that is already present increments its quantity instead of creating a
// second line.
type Service struct {
	repo LineRepository
}

func NewService(repo LineRepository) *Service {
	return &Service{repo: repo}
}

// List returns the user's current cart lines.
func (s *Service) List(ctx context.Context, userID int64) ([]domain.CartLine, error) {
	lines, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, domain.StoreReadError("failed to load cart", err)
	}
	return lines, nil
}

// Add puts one unit of the product into the cart, incrementing the existing
// line's quantity by 1 when one is already there.
func (s *Service) Add(ctx context.Context, userID int64, product *domain.Product) (*domain.CartLine, error) {
	existing, err := s.repo.GetByProduct(ctx, userID, product.ID)
	switch {
	case err == nil:
		newQty := existing.Quantity + 1
		if err := s.repo.UpdateQuantity(ctx, userID, product.ID, newQty); err != nil {
			return nil, domain.StoreWriteError("failed to update cart line", err)
		}
		existing.Quantity = newQty
		return existing, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		line := &domain.CartLine{
			ID:        common.UUIDint64(),
			UserID:    userID,
			ProductID: product.ID,
			Title:     product.Title,
			Price:     product.Price,
			Image:     product.Image,
			Quantity:  1,
		}
		if err := s.repo.Create(ctx, line); err != nil {
			return nil, domain.StoreWriteError("failed to add cart line", err)
		}
		return line, nil
	default:
		return nil, domain.StoreReadError("failed to check cart line", err)
	}
}

// SetQuantity overwrites the stored quantity. A quantity <= 0 deletes the
// line; setting a quantity on an absent line is a no-op.
func (s *Service) SetQuantity(ctx context.Context, userID, productID int64, quantity int) error {
	if quantity <= 0 {
		if err := s.repo.DeleteByProduct(ctx, userID, productID); err != nil {
			return domain.StoreWriteError("failed to remove cart line", err)
		}
		return nil
	}

	_, err := s.repo.GetByProduct(ctx, userID, productID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		zap.L().Debug("set quantity on absent cart line ignored",
			zap.Int64("user_id", userID),
			zap.Int64("product_id", productID))
		return nil
	}
	if err != nil {
		return domain.StoreReadError("failed to check cart line", err)
	}

	if err := s.repo.UpdateQuantity(ctx, userID, productID, quantity); err != nil {
		return domain.StoreWriteError("failed to update cart line", err)
	}
	return nil
}

// Remove deletes the line outright.
func (s *Service) Remove(ctx context.Context, userID, productID int64) error {
	return s.SetQuantity(ctx, userID, productID, 0)
}

// Clear deletes every line in the user's cart as one batch.
func (s *Service) Clear(ctx context.Context, userID int64) error {
	if err := s.repo.DeleteAllByUser(ctx, userID); err != nil {
		return domain.StoreWriteError("failed to clear cart", err)
	}
	return nil
}

// ComputeTotal sums price * quantity over the given lines. Pure; an empty
// set totals 0.
func ComputeTotal(lines []domain.CartLine) float64 {
	var total float64
	for _, line := range lines {
		total += line.Price * float64(line.Quantity)
	}
	return total
}
