package ports

import (
	"context"
	"time"

	"snack-store/internal/features/auth/domain"
)

// ProfileUpdate carries the mutable profile fields. Email is immutable.
type ProfileUpdate struct {
	FirstName string          `json:"firstName"`
	LastName  string          `json:"lastName"`
	Phone     string          `json:"phone"`
	Address   *domain.Address `json:"address"`
}

// AuthService defines the primary port for account and session operations.
type AuthService interface {
	// Register creates an account and opens a session for it.
	Register(ctx context.Context, reg domain.Registration) (*domain.User, string, error)
	// Login opens a session, returning the user and an opaque token.
	Login(ctx context.Context, email, password string) (*domain.User, string, error)
	// Logout revokes a session token. Unknown tokens are a no-op.
	Logout(ctx context.Context, token string) error
	// Authenticate resolves a session token to its user.
	Authenticate(ctx context.Context, token string) (*domain.User, error)
	UpdateProfile(ctx context.Context, userID string, update ProfileUpdate) (*domain.User, error)
	UpdatePassword(ctx context.Context, userID, current, password, confirm string) error
}

// UserRepository defines the secondary port for account storage.
// The password hash travels alongside the user, never inside it.
type UserRepository interface {
	Save(ctx context.Context, user *domain.User, passwordHash []byte) error
	FindByEmail(ctx context.Context, email string) (*domain.User, []byte, error)
	FindByID(ctx context.Context, userID string) (*domain.User, []byte, error)
	Update(ctx context.Context, user *domain.User, passwordHash []byte) error
}

// TokenRepository defines the secondary port for session tokens.
type TokenRepository interface {
	// Store maps the token to a user id for the given lifetime.
	Store(ctx context.Context, token, userID string, ttl time.Duration) error
	// Lookup returns the user id a token belongs to.
	Lookup(ctx context.Context, token string) (string, error)
	Delete(ctx context.Context, token string) error
}
