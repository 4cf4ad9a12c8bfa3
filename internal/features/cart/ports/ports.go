package ports

import (
	"context"

	catalog "snack-store/internal/features/catalog/domain"
	"snack-store/internal/features/cart/domain"
)

// CartService defines the primary port for cart operations.
// Every mutation re-validates against a fresh catalog snapshot before it is
// applied, then persists the whole cart under its session key.
type CartService interface {
	GetCart(ctx context.Context, sessionID string) (*domain.Cart, error)
	AddItem(ctx context.Context, sessionID, productID string, quantity int) (*domain.Cart, error)
	UpdateItemQuantity(ctx context.Context, sessionID, itemID string, quantity int) (*domain.Cart, error)
	RemoveItem(ctx context.Context, sessionID, itemID string) (*domain.Cart, error)
	ClearCart(ctx context.Context, sessionID string) error
}

// CartRepository defines the secondary port for cart persistence.
type CartRepository interface {
	// Load returns the cart for a session; an empty cart when none is stored.
	Load(ctx context.Context, sessionID string) (*domain.Cart, error)
	Save(ctx context.Context, sessionID string, cart *domain.Cart) error
	Delete(ctx context.Context, sessionID string) error
}

// ProductProvider supplies current product snapshots from the catalog.
// The cart never mutates what it reads here.
type ProductProvider interface {
	GetProductByID(ctx context.Context, id string) (*catalog.Product, error)
}
