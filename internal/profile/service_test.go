package profile

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/ShinMK-003/FoodOn/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const testUserID int64 = 7

var errBackend = errors.New("backend unavailable")

type memUserRepo struct {
	users       map[int64]*domain.UserProfile
	updateCalls int
}

func newMemUserRepo(users ...*domain.UserProfile) *memUserRepo {
	m := &memUserRepo{users: map[int64]*domain.UserProfile{}}
	for _, u := range users {
		m.users[u.ID] = u
	}
	return m
}

func (m *memUserRepo) GetByID(_ context.Context, id int64) (*domain.UserProfile, error) {
	if u, ok := m.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *memUserRepo) UpdateFields(_ context.Context, id int64, fields map[string]interface{}) error {
	m.updateCalls++
	u, ok := m.users[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	if v, ok := fields["name"]; ok {
		u.Name = v.(string)
	}
	if v, ok := fields["phone"]; ok {
		u.Phone = v.(string)
	}
	if v, ok := fields["avatar_url"]; ok {
		u.AvatarUrl = v.(string)
	}
	if v, ok := fields["last_updated"]; ok {
		u.LastUpdated = v.(time.Time)
	}
	return nil
}

type memFavRepo struct {
	entries map[int64]*domain.FavoriteEntry // productID -> entry (single test user)
}

func newMemFavRepo() *memFavRepo {
	return &memFavRepo{entries: map[int64]*domain.FavoriteEntry{}}
}

func (m *memFavRepo) ListByUser(_ context.Context, _ int64) ([]domain.FavoriteEntry, error) {
	var out []domain.FavoriteEntry
	for _, e := range m.entries {
		out = append(out, *e)
	}
	return out, nil
}

func (m *memFavRepo) GetByProduct(_ context.Context, _, productID int64) (*domain.FavoriteEntry, error) {
	if e, ok := m.entries[productID]; ok {
		cp := *e
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *memFavRepo) Create(_ context.Context, entry *domain.FavoriteEntry) error {
	cp := *entry
	m.entries[entry.ProductID] = &cp
	return nil
}

func (m *memFavRepo) DeleteByProduct(_ context.Context, _, productID int64) error {
	delete(m.entries, productID)
	return nil
}

// memBlobStore implements blobstore.Store in memory; failPut injects an
// upload failure.
type memBlobStore struct {
	objects map[string][]byte
	failPut bool
}

func newMemBlobStore() *memBlobStore {
	return &memBlobStore{objects: map[string][]byte{}}
}

func (m *memBlobStore) Put(key string, data []byte, _ string) error {
	if m.failPut {
		return errBackend
	}
	m.objects[key] = data
	return nil
}

func (m *memBlobStore) Get(key string) ([]byte, string, error) {
	if data, ok := m.objects[key]; ok {
		return data, "image/jpeg", nil
	}
	return nil, "", errors.New("not found")
}

func (m *memBlobStore) Delete(key string) error { delete(m.objects, key); return nil }
func (m *memBlobStore) URL(key string) string   { return "/api/v1/storage/" + key }
func (m *memBlobStore) Close() error            { return nil }

func testProfile() *domain.UserProfile {
	return &domain.UserProfile{
		ID:        testUserID,
		Name:      "Linh Tran",
		Email:     "linh@example.com",
		Phone:     "+84 912 345 678",
		AvatarUrl: "/api/v1/storage/profilePictures/old.jpg",
	}
}

func newTestService(users *memUserRepo, favs *memFavRepo, blobs *memBlobStore) *Service {
	return NewService(users, favs, blobs)
}

func TestUpdateRejectsShortName(t *testing.T) {
	users := newMemUserRepo(testProfile())
	svc := newTestService(users, newMemFavRepo(), newMemBlobStore())

	_, err := svc.Update(context.Background(), testUserID, "A", "+84 912 345 678")
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindValidation))
	assert.Equal(t, 0, users.updateCalls, "rejected before any write")
	assert.Equal(t, "Linh Tran", users.users[testUserID].Name)
}

func TestUpdateRejectsBadPhone(t *testing.T) {
	users := newMemUserRepo(testProfile())
	svc := newTestService(users, newMemFavRepo(), newMemBlobStore())

	for _, phone := range []string{"123", "phone me", "12a45678"} {
		_, err := svc.Update(context.Background(), testUserID, "Linh Tran", phone)
		require.Error(t, err, "phone %q", phone)
		assert.True(t, domain.IsKind(err, domain.KindValidation))
	}
	assert.Equal(t, 0, users.updateCalls)
}

func TestUpdateAcceptsLoosePhoneFormats(t *testing.T) {
	for _, phone := range []string{"+84 912 345 679", "0912-345-678", "12345678"} {
		users := newMemUserRepo(testProfile())
		svc := newTestService(users, newMemFavRepo(), newMemBlobStore())

		u, err := svc.Update(context.Background(), testUserID, "Linh Tran", phone)
		require.NoError(t, err, "phone %q", phone)
		assert.Equal(t, phone, u.Phone)
	}
}

func TestUpdateNoChanges(t *testing.T) {
	users := newMemUserRepo(testProfile())
	svc := newTestService(users, newMemFavRepo(), newMemBlobStore())

	_, err := svc.Update(context.Background(), testUserID, "Linh Tran", "+84 912 345 678")
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindNoChanges))
	assert.Equal(t, 0, users.updateCalls)
}

func TestUpdateNameOnly(t *testing.T) {
	users := newMemUserRepo(testProfile())
	svc := newTestService(users, newMemFavRepo(), newMemBlobStore())

	u, err := svc.Update(context.Background(), testUserID, "Linh Nguyen", "+84 912 345 678")
	require.NoError(t, err)
	assert.Equal(t, "Linh Nguyen", u.Name)
	assert.Equal(t, "+84 912 345 678", u.Phone)
	assert.False(t, u.LastUpdated.IsZero())
}

func TestToggleFavoriteInvolution(t *testing.T) {
	favs := newMemFavRepo()
	svc := newTestService(newMemUserRepo(testProfile()), favs, newMemBlobStore())
	product := &domain.Product{ID: 3, Title: "Pad Thai", Price: 9.75, Cuisine: "Thai"}

	on, err := svc.ToggleFavorite(context.Background(), testUserID, product)
	require.NoError(t, err)
	assert.True(t, on)
	assert.Len(t, favs.entries, 1)
	assert.Equal(t, "Pad Thai", favs.entries[3].Title, "entry is a full snapshot")

	off, err := svc.ToggleFavorite(context.Background(), testUserID, product)
	require.NoError(t, err)
	assert.False(t, off)
	assert.Empty(t, favs.entries, "toggling twice restores the original set")
}

func TestUploadAvatar(t *testing.T) {
	users := newMemUserRepo(testProfile())
	blobs := newMemBlobStore()
	svc := newTestService(users, newMemFavRepo(), blobs)

	url, err := svc.UploadAvatar(context.Background(), testUserID, []byte{0xff, 0xd8, 0xff}, "image/jpeg")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "/api/v1/storage/profilePictures/profilePicture_7_"))
	assert.Equal(t, url, users.users[testUserID].AvatarUrl)
	assert.Len(t, blobs.objects, 1)
}

func TestUploadAvatarFailureKeepsOldReference(t *testing.T) {
	users := newMemUserRepo(testProfile())
	blobs := newMemBlobStore()
	blobs.failPut = true
	svc := newTestService(users, newMemFavRepo(), blobs)

	_, err := svc.UploadAvatar(context.Background(), testUserID, []byte{0xff}, "image/jpeg")
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindUpload))
	assert.Equal(t, "/api/v1/storage/profilePictures/old.jpg", users.users[testUserID].AvatarUrl,
		"avatar reference untouched until the upload is confirmed")
	assert.Equal(t, 0, users.updateCalls)
}

func TestUploadAvatarRejectsEmpty(t *testing.T) {
	svc := newTestService(newMemUserRepo(testProfile()), newMemFavRepo(), newMemBlobStore())
	_, err := svc.UploadAvatar(context.Background(), testUserID, nil, "")
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindValidation))
}
