package adapters

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"snack-store/internal/core/store"
	"snack-store/internal/features/auth/domain"
)

func userEmailKey(email string) string {
	return "user:email:" + email
}

func userIDKey(userID string) string {
	return "user:id:" + userID
}

func tokenKey(token string) string {
	return "token:" + token
}

// storedUser is the persistence envelope pairing the account with its
// password hash.
type storedUser struct {
	User         domain.User `json:"user"`
	PasswordHash []byte      `json:"passwordHash"`
}

// RedisUserRepository implements ports.UserRepository on the Store port.
// Accounts are keyed by email; a secondary id key points back at the email so
// lookups by id stay a single extra hop. Emails never change after creation.
type RedisUserRepository struct {
	store store.Store
}

// NewRedisUserRepository creates a new RedisUserRepository.
func NewRedisUserRepository(s store.Store) *RedisUserRepository {
	return &RedisUserRepository{
		store: s,
	}
}

// Save persists a new account under its email and id keys.
func (r *RedisUserRepository) Save(ctx context.Context, user *domain.User, passwordHash []byte) error {
	data, err := json.Marshal(storedUser{User: *user, PasswordHash: passwordHash})
	if err != nil {
		return fmt.Errorf("failed to marshal user: %w", err)
	}

	if err := r.store.Set(ctx, userEmailKey(user.Email), data, 0); err != nil {
		return fmt.Errorf("failed to save user: %w", err)
	}
	if err := r.store.Set(ctx, userIDKey(user.ID), []byte(user.Email), 0); err != nil {
		return fmt.Errorf("failed to save user id index: %w", err)
	}

	return nil
}

// FindByEmail returns the account and its password hash.
func (r *RedisUserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, []byte, error) {
	data, err := r.store.Get(ctx, userEmailKey(email))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, nil, domain.ErrUserNotFound
		}
		return nil, nil, fmt.Errorf("failed to load user: %w", err)
	}

	var stored storedUser
	if err := json.Unmarshal(data, &stored); err != nil {
		return nil, nil, fmt.Errorf("failed to unmarshal user: %w", err)
	}

	return &stored.User, stored.PasswordHash, nil
}

// FindByID resolves the id index and returns the account.
func (r *RedisUserRepository) FindByID(ctx context.Context, userID string) (*domain.User, []byte, error) {
	email, err := r.store.Get(ctx, userIDKey(userID))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, nil, domain.ErrUserNotFound
		}
		return nil, nil, fmt.Errorf("failed to resolve user id: %w", err)
	}

	return r.FindByEmail(ctx, string(email))
}

// Update replaces the stored account. The email key stays put because the
// email is immutable.
func (r *RedisUserRepository) Update(ctx context.Context, user *domain.User, passwordHash []byte) error {
	if _, err := r.store.Get(ctx, userEmailKey(user.Email)); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.ErrUserNotFound
		}
		return fmt.Errorf("failed to load user: %w", err)
	}

	data, err := json.Marshal(storedUser{User: *user, PasswordHash: passwordHash})
	if err != nil {
		return fmt.Errorf("failed to marshal user: %w", err)
	}
	if err := r.store.Set(ctx, userEmailKey(user.Email), data, 0); err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}

	return nil
}

// RedisTokenRepository implements ports.TokenRepository on the Store port.
// Tokens expire on their own through the store's TTL.
type RedisTokenRepository struct {
	store store.Store
}

// NewRedisTokenRepository creates a new RedisTokenRepository.
func NewRedisTokenRepository(s store.Store) *RedisTokenRepository {
	return &RedisTokenRepository{
		store: s,
	}
}

// Store maps the token to a user id for the session lifetime.
func (r *RedisTokenRepository) Store(ctx context.Context, token, userID string, ttl time.Duration) error {
	if err := r.store.Set(ctx, tokenKey(token), []byte(userID), ttl); err != nil {
		return fmt.Errorf("failed to store token: %w", err)
	}
	return nil
}

// Lookup returns the user id owning the token.
func (r *RedisTokenRepository) Lookup(ctx context.Context, token string) (string, error) {
	data, err := r.store.Get(ctx, tokenKey(token))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", domain.ErrInvalidToken
		}
		return "", fmt.Errorf("failed to look up token: %w", err)
	}
	return string(data), nil
}

// Delete revokes the token. Deleting an absent token is a no-op.
func (r *RedisTokenRepository) Delete(ctx context.Context, token string) error {
	if err := r.store.Delete(ctx, tokenKey(token)); err != nil {
		return fmt.Errorf("failed to delete token: %w", err)
	}
	return nil
}
