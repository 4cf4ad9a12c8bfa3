package service

import (
	"context"
	"errors"
	"fmt"

	"snack-store/internal/core/logger"
	cartdomain "snack-store/internal/features/cart/domain"
	cartports "snack-store/internal/features/cart/ports"
	catalog "snack-store/internal/features/catalog/domain"
	"snack-store/internal/features/orders/domain"
	"snack-store/internal/features/orders/ports"
	shippingdomain "snack-store/internal/features/shipping/domain"
	shippingports "snack-store/internal/features/shipping/ports"

	"go.uber.org/zap"
)

// orderNumberRetries bounds regeneration on an order number collision.
const orderNumberRetries = 5

// OrderServiceImpl implements ports.OrderService.
// Checkout is the only place where cart state becomes an order; it
// re-validates every line against a fresh catalog snapshot right before the
// order is frozen.
type OrderServiceImpl struct {
	repo     ports.OrderRepository
	carts    cartports.CartService
	products cartports.ProductProvider
	shipping shippingports.Calculator
}

// NewOrderService creates a new OrderServiceImpl.
func NewOrderService(repo ports.OrderRepository, carts cartports.CartService, products cartports.ProductProvider, shipping shippingports.Calculator) *OrderServiceImpl {
	return &OrderServiceImpl{
		repo:     repo,
		carts:    carts,
		products: products,
		shipping: shipping,
	}
}

// Checkout converts the session's cart into an immutable order.
// The cart is re-validated line by line against current catalog state, the
// shipping quote is computed from the resulting subtotal, and the cart is
// cleared once the order is saved.
func (s *OrderServiceImpl) Checkout(ctx context.Context, sessionID, userID string, address domain.ShippingAddress, paymentMethod domain.PaymentMethod) (*domain.Order, error) {
	cart, err := s.carts.GetCart(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if len(cart.Items) == 0 {
		return nil, domain.ErrEmptyCart
	}

	if err := s.revalidate(ctx, cart); err != nil {
		return nil, err
	}

	subtotal := cart.Subtotal()
	quote := s.shipping.Quote(subtotal, &shippingdomain.LocalityHint{
		PostalCode: address.PostalCode,
		City:       address.City,
		Province:   address.Province,
	})
	total := subtotal + quote.Shipping

	order, err := domain.NewOrder(cart.Items, address, paymentMethod, subtotal, quote.Shipping, total, userID)
	if err != nil {
		return nil, err
	}

	if err := s.ensureUniqueNumber(ctx, order); err != nil {
		return nil, err
	}

	if err := s.repo.Save(ctx, order); err != nil {
		return nil, fmt.Errorf("service: failed to save order: %w", err)
	}

	if err := s.carts.ClearCart(ctx, sessionID); err != nil {
		// The order exists either way; an orphaned cart is recoverable.
		logger.Get().Warn("failed to clear cart after checkout",
			zap.String("sessionId", sessionID),
			zap.String("orderId", order.ID),
			zap.Error(err))
	}

	return order, nil
}

// revalidate refreshes every line's product snapshot and rejects checkout
// when any line exceeds current stock or points at an inactive product.
// A product gone from the catalog keeps its stale snapshot.
func (s *OrderServiceImpl) revalidate(ctx context.Context, cart *cartdomain.Cart) error {
	for i := range cart.Items {
		fresh, err := s.products.GetProductByID(ctx, cart.Items[i].Product.ID)
		if err != nil {
			if errors.Is(err, catalog.ErrProductNotFound) {
				continue
			}
			return err
		}
		cart.RefreshProduct(*fresh)
	}

	for i := range cart.Items {
		item := &cart.Items[i]
		if !item.Product.IsActive {
			return cartdomain.ErrProductInactive
		}
		if item.Quantity > item.Product.Stock {
			return &cartdomain.OutOfStockError{
				ProductID: item.Product.ID,
				Available: item.Product.Stock,
			}
		}
	}

	return nil
}

// ensureUniqueNumber regenerates the order number until no stored order
// carries it, giving up after a bounded number of attempts.
func (s *OrderServiceImpl) ensureUniqueNumber(ctx context.Context, order *domain.Order) error {
	for attempt := 0; attempt < orderNumberRetries; attempt++ {
		_, err := s.repo.FindByOrderNumber(ctx, order.OrderNumber)
		if errors.Is(err, domain.ErrOrderNotFound) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("service: failed to check order number: %w", err)
		}
		order.OrderNumber = domain.GenerateOrderNumber(order.CreatedAt)
	}
	return fmt.Errorf("service: could not allocate a unique order number after %d attempts", orderNumberRetries)
}

// GetOrderByID returns a single order by its internal id.
func (s *OrderServiceImpl) GetOrderByID(ctx context.Context, orderID string) (*domain.Order, error) {
	return s.repo.FindByID(ctx, orderID)
}

// GetOrderByNumber returns a single order by its human-readable number.
func (s *OrderServiceImpl) GetOrderByNumber(ctx context.Context, orderNumber string) (*domain.Order, error) {
	return s.repo.FindByOrderNumber(ctx, orderNumber)
}

// ListOrdersByUser returns the user's orders, newest first.
func (s *OrderServiceImpl) ListOrdersByUser(ctx context.Context, userID string) ([]domain.Order, error) {
	return s.repo.FindByUserID(ctx, userID)
}

// UpdateOrderStatus moves an order to a new status. Any valid status may
// follow any other.
func (s *OrderServiceImpl) UpdateOrderStatus(ctx context.Context, orderID string, status domain.Status) (*domain.Order, error) {
	if !status.IsValid() {
		return nil, domain.ErrInvalidStatus
	}
	return s.repo.UpdateStatus(ctx, orderID, status)
}
