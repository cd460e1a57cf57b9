package auth

import (
	"context"
	"testing"
	"time"

	"github.com/ShinMK-003/FoodOn/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type memUserRepo struct {
	byEmail map[string]*domain.UserProfile
	resets  []*domain.PasswordReset
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{byEmail: map[string]*domain.UserProfile{}}
}

func (m *memUserRepo) GetByID(_ context.Context, id int64) (*domain.UserProfile, error) {
	for _, u := range m.byEmail {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *memUserRepo) GetByEmail(_ context.Context, email string) (*domain.UserProfile, error) {
	if u, ok := m.byEmail[email]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *memUserRepo) Create(_ context.Context, u *domain.UserProfile) error {
	cp := *u
	m.byEmail[u.Email] = &cp
	return nil
}

func (m *memUserRepo) TouchLastLogin(_ context.Context, id int64) error { return nil }

func (m *memUserRepo) CreateReset(_ context.Context, r *domain.PasswordReset) error {
	m.resets = append(m.resets, r)
	return nil
}

type recordingMailer struct {
	sent []string
}

func (m *recordingMailer) Send(to, subject, body string) error {
	m.sent = append(m.sent, to)
	return nil
}

func newTestService(repo *memUserRepo, mailer *recordingMailer) *Service {
	return NewService(repo, mailer, "test-secret", time.Hour)
}

func TestRegisterAndLogin(t *testing.T) {
	repo := newMemUserRepo()
	svc := newTestService(repo, &recordingMailer{})

	user, err := svc.Register(context.Background(), "Linh", "Linh@Example.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, "linh@example.com", user.Email, "email is normalized")
	assert.NotEqual(t, "secret1", user.Password, "password is stored hashed")

	token, got, err := svc.Login(context.Background(), "linh@example.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)

	ident, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, ident.UserID)
	assert.Equal(t, "linh@example.com", ident.Email)
}

func TestRegisterValidation(t *testing.T) {
	svc := newTestService(newMemUserRepo(), &recordingMailer{})
	ctx := context.Background()

	_, err := svc.Register(ctx, "L", "linh@example.com", "secret1")
	assert.True(t, domain.IsKind(err, domain.KindValidation))

	_, err = svc.Register(ctx, "Linh", "not-an-email", "secret1")
	assert.True(t, domain.IsKind(err, domain.KindValidation))

	_, err = svc.Register(ctx, "Linh", "linh@example.com", "short")
	assert.True(t, domain.IsKind(err, domain.KindValidation))
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := newTestService(newMemUserRepo(), &recordingMailer{})
	ctx := context.Background()

	_, err := svc.Register(ctx, "Linh", "linh@example.com", "secret1")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "Other", "linh@example.com", "secret2")
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindValidation))
}

func TestLoginWrongPassword(t *testing.T) {
	svc := newTestService(newMemUserRepo(), &recordingMailer{})
	ctx := context.Background()

	_, err := svc.Register(ctx, "Linh", "linh@example.com", "secret1")
	require.NoError(t, err)

	_, _, err = svc.Login(ctx, "linh@example.com", "wrong")
	assert.True(t, domain.IsKind(err, domain.KindAuthRequired))

	_, _, err = svc.Login(ctx, "nobody@example.com", "secret1")
	assert.True(t, domain.IsKind(err, domain.KindAuthRequired))
}

func TestVerifyRejectsGarbage(t *testing.T) {
	svc := newTestService(newMemUserRepo(), &recordingMailer{})
	_, err := svc.Verify("not.a.token")
	assert.True(t, domain.IsKind(err, domain.KindAuthRequired))
}

func TestVerifyRejectsForeignSignature(t *testing.T) {
	repo := newMemUserRepo()
	issuer := NewService(repo, &recordingMailer{}, "other-secret", time.Hour)
	verifier := newTestService(repo, &recordingMailer{})

	_, err := issuer.Register(context.Background(), "Linh", "linh@example.com", "secret1")
	require.NoError(t, err)
	token, _, err := issuer.Login(context.Background(), "linh@example.com", "secret1")
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.True(t, domain.IsKind(err, domain.KindAuthRequired))
}

func TestPasswordResetDispatch(t *testing.T) {
	repo := newMemUserRepo()
	mailer := &recordingMailer{}
	svc := newTestService(repo, mailer)
	ctx := context.Background()

	_, err := svc.Register(ctx, "Linh", "linh@example.com", "secret1")
	require.NoError(t, err)

	require.NoError(t, svc.SendPasswordReset(ctx, "linh@example.com"))
	require.Len(t, repo.resets, 1)
	assert.NotEmpty(t, repo.resets[0].Token)
	assert.Equal(t, []string{"linh@example.com"}, mailer.sent)
}

func TestPasswordResetUnknownEmailDoesNotLeak(t *testing.T) {
	mailer := &recordingMailer{}
	svc := newTestService(newMemUserRepo(), mailer)

	require.NoError(t, svc.SendPasswordReset(context.Background(), "nobody@example.com"))
	assert.Empty(t, mailer.sent, "unknown accounts produce no mail and no error")
}
