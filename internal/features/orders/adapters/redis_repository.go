package adapters

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"snack-store/internal/core/store"
	"snack-store/internal/features/orders/domain"
)

const ordersKey = "orders"

// ordersDocument is the stored shape: every order in one JSON document,
// mirroring how the storefront persisted its order history locally.
type ordersDocument struct {
	Orders []domain.Order `json:"orders"`
}

// RedisOrderRepository implements ports.OrderRepository on the Store port.
type RedisOrderRepository struct {
	store store.Store
}

// NewRedisOrderRepository creates a new RedisOrderRepository.
func NewRedisOrderRepository(s store.Store) *RedisOrderRepository {
	return &RedisOrderRepository{
		store: s,
	}
}

func (r *RedisOrderRepository) load(ctx context.Context) (*ordersDocument, error) {
	data, err := r.store.Get(ctx, ordersKey)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return &ordersDocument{Orders: []domain.Order{}}, nil
		}
		return nil, fmt.Errorf("failed to load orders: %w", err)
	}

	var doc ordersDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal orders: %w", err)
	}
	return &doc, nil
}

func (r *RedisOrderRepository) save(ctx context.Context, doc *ordersDocument) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal orders: %w", err)
	}
	if err := r.store.Set(ctx, ordersKey, data, 0); err != nil {
		return fmt.Errorf("failed to save orders: %w", err)
	}
	return nil
}

// Save appends the order to the stored document.
func (r *RedisOrderRepository) Save(ctx context.Context, order *domain.Order) error {
	doc, err := r.load(ctx)
	if err != nil {
		return err
	}

	doc.Orders = append(doc.Orders, *order)
	return r.save(ctx, doc)
}

// FindByID returns the order with the given internal id.
func (r *RedisOrderRepository) FindByID(ctx context.Context, orderID string) (*domain.Order, error) {
	doc, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	for i := range doc.Orders {
		if doc.Orders[i].ID == orderID {
			order := doc.Orders[i]
			return &order, nil
		}
	}
	return nil, domain.ErrOrderNotFound
}

// FindByOrderNumber returns the order with the given human-readable number.
func (r *RedisOrderRepository) FindByOrderNumber(ctx context.Context, orderNumber string) (*domain.Order, error) {
	doc, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	for i := range doc.Orders {
		if doc.Orders[i].OrderNumber == orderNumber {
			order := doc.Orders[i]
			return &order, nil
		}
	}
	return nil, domain.ErrOrderNotFound
}

// FindByUserID returns the user's orders, newest first.
func (r *RedisOrderRepository) FindByUserID(ctx context.Context, userID string) ([]domain.Order, error) {
	doc, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	orders := make([]domain.Order, 0)
	for i := range doc.Orders {
		if doc.Orders[i].UserID == userID {
			orders = append(orders, doc.Orders[i])
		}
	}

	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})

	return orders, nil
}

// UpdateStatus replaces the order's status and bumps UpdatedAt.
func (r *RedisOrderRepository) UpdateStatus(ctx context.Context, orderID string, status domain.Status) (*domain.Order, error) {
	doc, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	for i := range doc.Orders {
		if doc.Orders[i].ID == orderID {
			doc.Orders[i].Status = status
			doc.Orders[i].UpdatedAt = time.Now()

			if err := r.save(ctx, doc); err != nil {
				return nil, err
			}

			order := doc.Orders[i]
			return &order, nil
		}
	}
	return nil, domain.ErrOrderNotFound
}
