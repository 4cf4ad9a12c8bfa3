package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"snack-store/internal/core/config"
	"snack-store/internal/features/auth/domain"
	"snack-store/internal/features/auth/ports"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// AuthServiceImpl implements ports.AuthService.
// Sessions are opaque uuid tokens held in the store with a configured TTL;
// there is nothing to decode client-side.
type AuthServiceImpl struct {
	users    ports.UserRepository
	tokens   ports.TokenRepository
	tokenTTL time.Duration
}

// NewAuthService creates a new AuthServiceImpl.
func NewAuthService(users ports.UserRepository, tokens ports.TokenRepository, cfg config.AuthConfig) *AuthServiceImpl {
	return &AuthServiceImpl{
		users:    users,
		tokens:   tokens,
		tokenTTL: time.Duration(cfg.TokenTTLHours) * time.Hour,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates an account and opens a session for it.
func (s *AuthServiceImpl) Register(ctx context.Context, reg domain.Registration) (*domain.User, string, error) {
	reg.Email = normalizeEmail(reg.Email)

	if err := reg.Validate(); err != nil {
		return nil, "", err
	}

	_, _, err := s.users.FindByEmail(ctx, reg.Email)
	if err == nil {
		return nil, "", domain.ErrEmailTaken
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(reg.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("service: failed to hash password: %w", err)
	}

	user := &domain.User{
		ID:        uuid.NewString(),
		Email:     reg.Email,
		FirstName: reg.FirstName,
		LastName:  reg.LastName,
		Phone:     reg.Phone,
		CreatedAt: time.Now(),
	}

	if err := s.users.Save(ctx, user, hash); err != nil {
		return nil, "", fmt.Errorf("service: failed to save user: %w", err)
	}

	token, err := s.openSession(ctx, user.ID)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

// Login verifies the credentials and opens a session.
// A missing account and a wrong password produce the same error.
func (s *AuthServiceImpl) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	user, hash, err := s.users.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, "", domain.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword(hash, []byte(password)); err != nil {
		return nil, "", domain.ErrInvalidCredentials
	}

	token, err := s.openSession(ctx, user.ID)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

func (s *AuthServiceImpl) openSession(ctx context.Context, userID string) (string, error) {
	token := uuid.NewString()
	if err := s.tokens.Store(ctx, token, userID, s.tokenTTL); err != nil {
		return "", fmt.Errorf("service: failed to store session token: %w", err)
	}
	return token, nil
}

// Logout revokes the session token.
func (s *AuthServiceImpl) Logout(ctx context.Context, token string) error {
	if err := s.tokens.Delete(ctx, token); err != nil {
		return fmt.Errorf("service: failed to revoke token: %w", err)
	}
	return nil
}

// Authenticate resolves a session token to its user.
func (s *AuthServiceImpl) Authenticate(ctx context.Context, token string) (*domain.User, error) {
	userID, err := s.tokens.Lookup(ctx, token)
	if err != nil {
		return nil, err
	}

	user, _, err := s.users.FindByID(ctx, userID)
	if err != nil {
		// The account vanished underneath a live token.
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidToken
		}
		return nil, err
	}

	return user, nil
}

// UpdateProfile replaces the mutable profile fields. Email stays put.
func (s *AuthServiceImpl) UpdateProfile(ctx context.Context, userID string, update ports.ProfileUpdate) (*domain.User, error) {
	user, hash, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	user.FirstName = update.FirstName
	user.LastName = update.LastName
	user.Phone = update.Phone
	user.Address = update.Address

	if err := s.users.Update(ctx, user, hash); err != nil {
		return nil, fmt.Errorf("service: failed to update profile: %w", err)
	}

	return user, nil
}

// UpdatePassword replaces the password after verifying the current one.
func (s *AuthServiceImpl) UpdatePassword(ctx context.Context, userID, current, password, confirm string) error {
	user, hash, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword(hash, []byte(current)); err != nil {
		return domain.ErrInvalidCredentials
	}

	if err := domain.ValidatePassword(password, confirm); err != nil {
		return err
	}

	newHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("service: failed to hash password: %w", err)
	}

	if err := s.users.Update(ctx, user, newHash); err != nil {
		return fmt.Errorf("service: failed to update password: %w", err)
	}

	return nil
}
