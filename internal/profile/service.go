package profile

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/ShinMK-003/FoodOn/internal/blobstore"
	"github.com/ShinMK-003/FoodOn/internal/domain"
	"github.com/ShinMK-003/FoodOn/pkg/common"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// phonePattern is deliberately loose: optional +, then digits, spaces and
// hyphens, at least 8 of them.
var phonePattern = regexp.MustCompile(`^\+?[\d\s-]{8,}$`)

// Service edits profiles and toggles favorites. Email is immutable once
// set; only name, phone and the avatar reference are client-editable.
type Service struct {
	users UserRepository
	favs  FavoriteRepository
	blobs blobstore.Store
}

func NewService(users UserRepository, favs FavoriteRepository, blobs blobstore.Store) *Service {
	return &Service{users: users, favs: favs, blobs: blobs}
}

// Get loads the profile record.
func (s *Service) Get(ctx context.Context, userID int64) (*domain.UserProfile, error) {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NotFoundError("profile not found")
		}
		return nil, domain.StoreReadError("failed to load profile", err)
	}
	return u, nil
}

// Update applies name/phone edits. Unchanged inputs yield ErrNoChanges
// without touching the store; invalid inputs are rejected before any write.
func (s *Service) Update(ctx context.Context, userID int64, name, phone string) (*domain.UserProfile, error) {
	current, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}

	name = strings.TrimSpace(name)
	if name != current.Name {
		if len([]rune(name)) < 2 {
			return nil, domain.ValidationError("name", "name must be at least 2 characters long")
		}
		fields["name"] = name
	}

	phone = strings.TrimSpace(phone)
	if phone != current.Phone {
		if !phonePattern.MatchString(phone) {
			return nil, domain.ValidationError("phone", "please enter a valid phone number")
		}
		fields["phone"] = phone
	}

	if len(fields) == 0 {
		return nil, domain.ErrNoChanges
	}

	now := time.Now()
	fields["last_updated"] = now
	fields["updated_at"] = now
	if err := s.users.UpdateFields(ctx, userID, fields); err != nil {
		return nil, domain.StoreWriteError("failed to update profile", err)
	}

	if v, ok := fields["name"]; ok {
		current.Name = v.(string)
	}
	if v, ok := fields["phone"]; ok {
		current.Phone = v.(string)
	}
	current.LastUpdated = now
	return current, nil
}

// UploadAvatar stores the image bytes under a per-user, per-timestamp key
// and only then writes the resulting URL to the profile. A failed upload
// leaves the previous avatar reference untouched.
func (s *Service) UploadAvatar(ctx context.Context, userID int64, data []byte, contentType string) (string, error) {
	if len(data) == 0 {
		return "", domain.ValidationError("image", "empty image upload")
	}
	if contentType == "" {
		contentType = "image/jpeg"
	}

	key := fmt.Sprintf("profilePictures/profilePicture_%d_%d.jpg", userID, time.Now().UnixMilli())
	if err := s.blobs.Put(key, data, contentType); err != nil {
		return "", domain.UploadError("failed to upload avatar", err)
	}
	url := s.blobs.URL(key)

	now := time.Now()
	err := s.users.UpdateFields(ctx, userID, map[string]interface{}{
		"avatar_url":   url,
		"last_updated": now,
		"updated_at":   now,
	})
	if err != nil {
		return "", domain.StoreWriteError("failed to save avatar reference", err)
	}

	zap.L().Info("avatar updated", zap.Int64("user_id", userID), zap.String("key", key))
	return url, nil
}

// ToggleFavorite flips the product's membership in the user's favorites
// set: present deletes, absent inserts a full snapshot. Applying it twice
// restores the original set.
func (s *Service) ToggleFavorite(ctx context.Context, userID int64, product *domain.Product) (favorited bool, err error) {
	_, err = s.favs.GetByProduct(ctx, userID, product.ID)
	switch {
	case err == nil:
		if err := s.favs.DeleteByProduct(ctx, userID, product.ID); err != nil {
			return false, domain.StoreWriteError("failed to remove favorite", err)
		}
		return false, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		entry := domain.SnapshotOf(userID, product)
		entry.ID = common.UUIDint64()
		if err := s.favs.Create(ctx, entry); err != nil {
			return false, domain.StoreWriteError("failed to add favorite", err)
		}
		return true, nil
	default:
		return false, domain.StoreReadError("failed to check favorite", err)
	}
}

// ListFavorites returns the user's favorites set, newest first.
func (s *Service) ListFavorites(ctx context.Context, userID int64) ([]domain.FavoriteEntry, error) {
	entries, err := s.favs.ListByUser(ctx, userID)
	if err != nil {
		return nil, domain.StoreReadError("failed to load favorites", err)
	}
	return entries, nil
}

// RemoveFavorite deletes one entry directly (favorites screen delete).
func (s *Service) RemoveFavorite(ctx context.Context, userID, productID int64) error {
	if err := s.favs.DeleteByProduct(ctx, userID, productID); err != nil {
		return domain.StoreWriteError("failed to remove favorite", err)
	}
	return nil
}
