package adapters

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"snack-store/internal/core/store"
	"snack-store/internal/features/cart/domain"
)

// cartKey builds the store key owning one session's cart.
func cartKey(sessionID string) string {
	return "cart:" + sessionID
}

// RedisCartRepository implements ports.CartRepository on the Store port.
// Each session's cart persists as a single JSON document until cleared;
// there is no TTL because the cart survives across visits.
type RedisCartRepository struct {
	store store.Store
}

// NewRedisCartRepository creates a new RedisCartRepository.
func NewRedisCartRepository(s store.Store) *RedisCartRepository {
	return &RedisCartRepository{
		store: s,
	}
}

// Load returns the stored cart for the session, or a fresh empty cart when
// none exists yet.
func (r *RedisCartRepository) Load(ctx context.Context, sessionID string) (*domain.Cart, error) {
	data, err := r.store.Get(ctx, cartKey(sessionID))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.New(), nil
		}
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}

	var cart domain.Cart
	if err := json.Unmarshal(data, &cart); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cart: %w", err)
	}
	if cart.Items == nil {
		cart.Items = []domain.Item{}
	}

	return &cart, nil
}

// Save persists the cart under the session key.
func (r *RedisCartRepository) Save(ctx context.Context, sessionID string, cart *domain.Cart) error {
	data, err := json.Marshal(cart)
	if err != nil {
		return fmt.Errorf("failed to marshal cart: %w", err)
	}

	if err := r.store.Set(ctx, cartKey(sessionID), data, 0); err != nil {
		return fmt.Errorf("failed to save cart: %w", err)
	}

	return nil
}

// Delete removes the session's cart entirely.
func (r *RedisCartRepository) Delete(ctx context.Context, sessionID string) error {
	if err := r.store.Delete(ctx, cartKey(sessionID)); err != nil {
		return fmt.Errorf("failed to delete cart: %w", err)
	}
	return nil
}
