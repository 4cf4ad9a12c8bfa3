package ports

import (
	"context"

	"snack-store/internal/features/orders/domain"
)

// OrderService defines the primary port for checkout and order lookups.
type OrderService interface {
	// Checkout converts the session's cart into an immutable order and
	// clears the cart on success.
	Checkout(ctx context.Context, sessionID, userID string, address domain.ShippingAddress, paymentMethod domain.PaymentMethod) (*domain.Order, error)
	GetOrderByID(ctx context.Context, orderID string) (*domain.Order, error)
	GetOrderByNumber(ctx context.Context, orderNumber string) (*domain.Order, error)
	ListOrdersByUser(ctx context.Context, userID string) ([]domain.Order, error)
	UpdateOrderStatus(ctx context.Context, orderID string, status domain.Status) (*domain.Order, error)
}

// OrderRepository defines the secondary port for order storage.
type OrderRepository interface {
	// Save appends the order. An order must be queryable by its number
	// immediately after Save returns.
	Save(ctx context.Context, order *domain.Order) error
	FindByID(ctx context.Context, orderID string) (*domain.Order, error)
	FindByOrderNumber(ctx context.Context, orderNumber string) (*domain.Order, error)
	// FindByUserID returns the user's orders sorted by creation time,
	// newest first. The ordering is a contract, not incidental.
	FindByUserID(ctx context.Context, userID string) ([]domain.Order, error)
	// UpdateStatus replaces the status and bumps UpdatedAt; everything
	// else on the order stays frozen.
	UpdateStatus(ctx context.Context, orderID string, status domain.Status) (*domain.Order, error)
}
