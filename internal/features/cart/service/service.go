package service

import (
	"context"
	"errors"
	"fmt"

	"snack-store/internal/features/cart/domain"
	"snack-store/internal/features/cart/ports"
	catalog "snack-store/internal/features/catalog/domain"
)

// CartServiceImpl implements ports.CartService.
// Stock is checked lazily at mutation time: each mutating operation fetches a
// fresh product snapshot from the catalog first, so a cart held across visits
// is always re-validated against current availability.
type CartServiceImpl struct {
	repo     ports.CartRepository
	products ports.ProductProvider
}

// NewCartService creates a new CartServiceImpl.
func NewCartService(repo ports.CartRepository, products ports.ProductProvider) *CartServiceImpl {
	return &CartServiceImpl{
		repo:     repo,
		products: products,
	}
}

// GetCart returns the session's cart, empty if nothing was ever added.
func (s *CartServiceImpl) GetCart(ctx context.Context, sessionID string) (*domain.Cart, error) {
	cart, err := s.repo.Load(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to load cart: %w", err)
	}
	return cart, nil
}

// AddItem adds a product to the session's cart against the catalog's current
// stock, merging with an existing line for the same product.
func (s *CartServiceImpl) AddItem(ctx context.Context, sessionID, productID string, quantity int) (*domain.Cart, error) {
	cart, err := s.repo.Load(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to load cart: %w", err)
	}

	product, err := s.products.GetProductByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	if err := cart.AddItem(*product, quantity); err != nil {
		return nil, err
	}

	if err := s.repo.Save(ctx, sessionID, cart); err != nil {
		return nil, fmt.Errorf("service: failed to save cart: %w", err)
	}

	return cart, nil
}

// UpdateItemQuantity replaces a line's quantity after refreshing its product
// snapshot from the catalog. A quantity of zero or less removes the line.
func (s *CartServiceImpl) UpdateItemQuantity(ctx context.Context, sessionID, itemID string, quantity int) (*domain.Cart, error) {
	cart, err := s.repo.Load(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to load cart: %w", err)
	}

	if item := cart.ItemByID(itemID); item != nil {
		fresh, err := s.products.GetProductByID(ctx, item.Product.ID)
		if err == nil {
			cart.RefreshProduct(*fresh)
		} else if !errors.Is(err, catalog.ErrProductNotFound) {
			return nil, err
		}
		// A product that vanished from the catalog keeps its stale snapshot;
		// the stock captured there still bounds the quantity.
	}

	if err := cart.UpdateQuantity(itemID, quantity); err != nil {
		return nil, err
	}

	if err := s.repo.Save(ctx, sessionID, cart); err != nil {
		return nil, fmt.Errorf("service: failed to save cart: %w", err)
	}

	return cart, nil
}

// RemoveItem removes a line from the session's cart. Unknown ids are a no-op.
func (s *CartServiceImpl) RemoveItem(ctx context.Context, sessionID, itemID string) (*domain.Cart, error) {
	cart, err := s.repo.Load(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to load cart: %w", err)
	}

	cart.RemoveItem(itemID)

	if err := s.repo.Save(ctx, sessionID, cart); err != nil {
		return nil, fmt.Errorf("service: failed to save cart: %w", err)
	}

	return cart, nil
}

// ClearCart empties the session's cart.
func (s *CartServiceImpl) ClearCart(ctx context.Context, sessionID string) error {
	if err := s.repo.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("service: failed to clear cart: %w", err)
	}
	return nil
}
