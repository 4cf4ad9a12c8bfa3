package service

import (
	"context"
	"errors"
	"testing"

	"snack-store/internal/features/cart/domain"
	catalog "snack-store/internal/features/catalog/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockCartRepository is a mock implementation of ports.CartRepository
type MockCartRepository struct {
	mock.Mock
}

func (m *MockCartRepository) Load(ctx context.Context, sessionID string) (*domain.Cart, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Cart), args.Error(1)
}

func (m *MockCartRepository) Save(ctx context.Context, sessionID string, cart *domain.Cart) error {
	args := m.Called(ctx, sessionID, cart)
	return args.Error(0)
}

func (m *MockCartRepository) Delete(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

// MockProductProvider is a mock implementation of ports.ProductProvider
type MockProductProvider struct {
	mock.Mock
}

func (m *MockProductProvider) GetProductByID(ctx context.Context, id string) (*catalog.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func activeProduct(id string, price float64, stock int) *catalog.Product {
	return &catalog.Product{ID: id, Price: price, Stock: stock, IsActive: true}
}

func TestCartService_AddItem(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mockRepo := new(MockCartRepository)
		mockProducts := new(MockProductProvider)
		svc := NewCartService(mockRepo, mockProducts)

		mockRepo.On("Load", ctx, "s1").Return(domain.New(), nil).Once()
		mockProducts.On("GetProductByID", ctx, "p1").Return(activeProduct("p1", 1000, 5), nil).Once()
		mockRepo.On("Save", ctx, "s1", mock.AnythingOfType("*domain.Cart")).Return(nil).Once()

		cart, err := svc.AddItem(ctx, "s1", "p1", 2)
		require.NoError(t, err)
		assert.Equal(t, 2, cart.ItemCount())
		mockRepo.AssertExpectations(t)
		mockProducts.AssertExpectations(t)
	})

	t.Run("OutOfStockNotSaved", func(t *testing.T) {
		mockRepo := new(MockCartRepository)
		mockProducts := new(MockProductProvider)
		svc := NewCartService(mockRepo, mockProducts)

		mockRepo.On("Load", ctx, "s1").Return(domain.New(), nil).Once()
		mockProducts.On("GetProductByID", ctx, "p1").Return(activeProduct("p1", 1000, 1), nil).Once()

		cart, err := svc.AddItem(ctx, "s1", "p1", 3)
		assert.ErrorIs(t, err, domain.ErrOutOfStock)
		assert.Nil(t, cart)
		mockRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("UnknownProduct", func(t *testing.T) {
		mockRepo := new(MockCartRepository)
		mockProducts := new(MockProductProvider)
		svc := NewCartService(mockRepo, mockProducts)

		mockRepo.On("Load", ctx, "s1").Return(domain.New(), nil).Once()
		mockProducts.On("GetProductByID", ctx, "ghost").Return(nil, catalog.ErrProductNotFound).Once()

		_, err := svc.AddItem(ctx, "s1", "ghost", 1)
		assert.ErrorIs(t, err, catalog.ErrProductNotFound)
	})

	t.Run("RepoLoadError", func(t *testing.T) {
		mockRepo := new(MockCartRepository)
		mockProducts := new(MockProductProvider)
		svc := NewCartService(mockRepo, mockProducts)

		mockRepo.On("Load", ctx, "s1").Return(nil, errors.New("redis down")).Once()

		_, err := svc.AddItem(ctx, "s1", "p1", 1)
		assert.Error(t, err)
	})
}

func TestCartService_UpdateItemQuantity(t *testing.T) {
	ctx := context.Background()

	cartWithItem := func(t *testing.T, stock int) (*domain.Cart, string) {
		cart := domain.New()
		require.NoError(t, cart.AddItem(*activeProduct("p1", 1000, stock), 2))
		return cart, cart.Items[0].ID
	}

	t.Run("RefreshesSnapshotBeforeCheck", func(t *testing.T) {
		mockRepo := new(MockCartRepository)
		mockProducts := new(MockProductProvider)
		svc := NewCartService(mockRepo, mockProducts)

		cart, itemID := cartWithItem(t, 10)
		mockRepo.On("Load", ctx, "s1").Return(cart, nil).Once()
		// Stock dropped to 3 since the item was added.
		mockProducts.On("GetProductByID", ctx, "p1").Return(activeProduct("p1", 1000, 3), nil).Once()

		_, err := svc.UpdateItemQuantity(ctx, "s1", itemID, 5)
		assert.ErrorIs(t, err, domain.ErrOutOfStock)

		var oos *domain.OutOfStockError
		require.ErrorAs(t, err, &oos)
		assert.Equal(t, 3, oos.Available)
		mockRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Success", func(t *testing.T) {
		mockRepo := new(MockCartRepository)
		mockProducts := new(MockProductProvider)
		svc := NewCartService(mockRepo, mockProducts)

		cart, itemID := cartWithItem(t, 10)
		mockRepo.On("Load", ctx, "s1").Return(cart, nil).Once()
		mockProducts.On("GetProductByID", ctx, "p1").Return(activeProduct("p1", 1000, 10), nil).Once()
		mockRepo.On("Save", ctx, "s1", mock.AnythingOfType("*domain.Cart")).Return(nil).Once()

		updated, err := svc.UpdateItemQuantity(ctx, "s1", itemID, 7)
		require.NoError(t, err)
		assert.Equal(t, 7, updated.ItemCount())
		mockRepo.AssertExpectations(t)
	})

	t.Run("VanishedProductKeepsSnapshot", func(t *testing.T) {
		mockRepo := new(MockCartRepository)
		mockProducts := new(MockProductProvider)
		svc := NewCartService(mockRepo, mockProducts)

		cart, itemID := cartWithItem(t, 4)
		mockRepo.On("Load", ctx, "s1").Return(cart, nil).Once()
		mockProducts.On("GetProductByID", ctx, "p1").Return(nil, catalog.ErrProductNotFound).Once()
		mockRepo.On("Save", ctx, "s1", mock.AnythingOfType("*domain.Cart")).Return(nil).Once()

		// Stale snapshot still has stock 4, so quantity 3 passes.
		updated, err := svc.UpdateItemQuantity(ctx, "s1", itemID, 3)
		require.NoError(t, err)
		assert.Equal(t, 3, updated.ItemCount())
	})

	t.Run("UnknownItem", func(t *testing.T) {
		mockRepo := new(MockCartRepository)
		mockProducts := new(MockProductProvider)
		svc := NewCartService(mockRepo, mockProducts)

		mockRepo.On("Load", ctx, "s1").Return(domain.New(), nil).Once()

		_, err := svc.UpdateItemQuantity(ctx, "s1", "missing", 2)
		assert.ErrorIs(t, err, domain.ErrItemNotFound)
	})

	t.Run("ZeroQuantityRemoves", func(t *testing.T) {
		mockRepo := new(MockCartRepository)
		mockProducts := new(MockProductProvider)
		svc := NewCartService(mockRepo, mockProducts)

		cart, itemID := cartWithItem(t, 10)
		mockRepo.On("Load", ctx, "s1").Return(cart, nil).Once()
		mockProducts.On("GetProductByID", ctx, "p1").Return(activeProduct("p1", 1000, 10), nil).Once()
		mockRepo.On("Save", ctx, "s1", mock.AnythingOfType("*domain.Cart")).Return(nil).Once()

		updated, err := svc.UpdateItemQuantity(ctx, "s1", itemID, 0)
		require.NoError(t, err)
		assert.Empty(t, updated.Items)
	})
}

func TestCartService_RemoveItem(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockCartRepository)
	mockProducts := new(MockProductProvider)
	svc := NewCartService(mockRepo, mockProducts)

	cart := domain.New()
	require.NoError(t, cart.AddItem(*activeProduct("p1", 1000, 5), 1))
	itemID := cart.Items[0].ID

	mockRepo.On("Load", ctx, "s1").Return(cart, nil).Once()
	mockRepo.On("Save", ctx, "s1", mock.AnythingOfType("*domain.Cart")).Return(nil).Once()

	updated, err := svc.RemoveItem(ctx, "s1", itemID)
	require.NoError(t, err)
	assert.Empty(t, updated.Items)
	mockRepo.AssertExpectations(t)
}

func TestCartService_ClearCart(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mockRepo := new(MockCartRepository)
		svc := NewCartService(mockRepo, new(MockProductProvider))

		mockRepo.On("Delete", ctx, "s1").Return(nil).Once()

		assert.NoError(t, svc.ClearCart(ctx, "s1"))
		mockRepo.AssertExpectations(t)
	})

	t.Run("RepoError", func(t *testing.T) {
		mockRepo := new(MockCartRepository)
		svc := NewCartService(mockRepo, new(MockProductProvider))

		mockRepo.On("Delete", ctx, "s1").Return(errors.New("redis down")).Once()

		assert.Error(t, svc.ClearCart(ctx, "s1"))
	})
}

func TestCartService_GetCart(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockCartRepository)
	svc := NewCartService(mockRepo, new(MockProductProvider))

	expected := domain.New()
	mockRepo.On("Load", ctx, "s1").Return(expected, nil).Once()

	cart, err := svc.GetCart(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, expected, cart)
}
