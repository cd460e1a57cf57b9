package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ShinMK-003/FoodOn/internal/domain"
	"github.com/ShinMK-003/FoodOn/internal/notify"
	"github.com/ShinMK-003/FoodOn/pkg/common"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const resetTokenTTL = 30 * time.Minute

// Identity is the authenticated caller, decoded from the request token and
// passed explicitly into every service call. There is no ambient session.
type Identity struct {
	UserID int64
	Email  string
}

// Claims is the JWT payload for issued session tokens.
type Claims struct {
	UserID int64  `json:"uid,string"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// Service issues and verifies identities: email/password registration and
// sign-in, token verification, password-reset mail dispatch.
type Service struct {
	repo      UserRepository
	mailer    notify.Mailer
	jwtSecret []byte
	tokenTTL  time.Duration
}

func NewService(repo UserRepository, mailer notify.Mailer, jwtSecret string, tokenTTL time.Duration) *Service {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &Service{repo: repo, mailer: mailer, jwtSecret: []byte(jwtSecret), tokenTTL: tokenTTL}
}

// Register creates a new account. Email is normalized and immutable
// afterwards.
func (s *Service) Register(ctx context.Context, name, email, password string) (*domain.UserProfile, error) {
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))

	if len([]rune(name)) < 2 {
		return nil, domain.ValidationError("name", "name must be at least 2 characters long")
	}
	if email == "" || !strings.Contains(email, "@") {
		return nil, domain.ValidationError("email", "a valid email is required")
	}
	if len(password) < 6 {
		return nil, domain.ValidationError("password", "password must be at least 6 characters")
	}

	if _, err := s.repo.GetByEmail(ctx, email); err == nil {
		return nil, domain.ValidationError("email", "an account with this email already exists")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.StoreReadError("failed to check account", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, domain.StoreWriteError("failed to hash password", err)
	}

	user := &domain.UserProfile{
		ID:       common.UUIDint64(),
		Name:     name,
		Email:    email,
		Password: string(hash),
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, domain.StoreWriteError("failed to create account", err)
	}

	zap.L().Info("account registered", zap.Int64("user_id", user.ID))
	return user, nil
}

// Login verifies credentials and issues a signed session token.
func (s *Service) Login(ctx context.Context, email, password string) (token string, user *domain.UserProfile, err error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err = s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, domain.AuthRequiredError("invalid email or password")
		}
		return "", nil, domain.StoreReadError("failed to load account", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return "", nil, domain.AuthRequiredError("invalid email or password")
	}

	token, err = s.issueToken(user)
	if err != nil {
		return "", nil, domain.StoreWriteError("failed to issue token", err)
	}

	if err := s.repo.TouchLastLogin(ctx, user.ID); err != nil {
		zap.L().Warn("failed to stamp last login", zap.Int64("user_id", user.ID), zap.Error(err))
	}
	return token, user, nil
}

func (s *Service) issueToken(user *domain.UserProfile) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: user.ID,
		Email:  user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   fmt.Sprintf("%d", user.ID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtSecret)
}

// Verify parses a session token back into an identity.
func (s *Service) Verify(tokenStr string) (*Identity, error) {
	claims := new(Claims)
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return nil, domain.AuthRequiredError("invalid or expired session")
	}
	return &Identity{UserID: claims.UserID, Email: claims.Email}, nil
}

// SendPasswordReset stores a fresh reset token and mails it. Unknown emails
// report success without dispatching anything, so the endpoint does not
// leak which accounts exist.
func (s *Service) SendPasswordReset(ctx context.Context, email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return domain.ValidationError("email", "email is required")
	}

	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return domain.StoreReadError("failed to load account", err)
	}

	reset := &domain.PasswordReset{
		ID:        common.UUIDint64(),
		UserID:    user.ID,
		Token:     uuid.NewString(),
		ExpiresAt: time.Now().Add(resetTokenTTL),
	}
	if err := s.repo.CreateReset(ctx, reset); err != nil {
		return domain.StoreWriteError("failed to create reset token", err)
	}

	body := fmt.Sprintf("Hi %s,\n\nUse this code to reset your password: %s\n\nIt expires in %d minutes.\n",
		user.Name, reset.Token, int(resetTokenTTL.Minutes()))
	if err := s.mailer.Send(user.Email, "Password reset", body); err != nil {
		return domain.StoreWriteError("failed to send reset mail", err)
	}
	return nil
}
