package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"snack-store/internal/core/config"
	"snack-store/internal/features/cart/domain"
	catalog "snack-store/internal/features/catalog/domain"
	shippingservice "snack-store/internal/features/shipping/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockCartService is a mock implementation of ports.CartService
type MockCartService struct {
	mock.Mock
}

func (m *MockCartService) GetCart(ctx context.Context, sessionID string) (*domain.Cart, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Cart), args.Error(1)
}

func (m *MockCartService) AddItem(ctx context.Context, sessionID, productID string, quantity int) (*domain.Cart, error) {
	args := m.Called(ctx, sessionID, productID, quantity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Cart), args.Error(1)
}

func (m *MockCartService) UpdateItemQuantity(ctx context.Context, sessionID, itemID string, quantity int) (*domain.Cart, error) {
	args := m.Called(ctx, sessionID, itemID, quantity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Cart), args.Error(1)
}

func (m *MockCartService) RemoveItem(ctx context.Context, sessionID, itemID string) (*domain.Cart, error) {
	args := m.Called(ctx, sessionID, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Cart), args.Error(1)
}

func (m *MockCartService) ClearCart(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

func setupApp(service *MockCartService) *fiber.App {
	calc := shippingservice.NewFlatRateCalculator(config.ShippingConfig{
		FreeShippingThreshold: 10000,
		BaseCost:              1500,
	})
	h := NewCartHandler(service, calc)

	app := fiber.New()
	app.Get("/cart", h.GetCart)
	app.Post("/cart/items", h.AddItem)
	app.Put("/cart/items/:id", h.UpdateItem)
	app.Delete("/cart/items/:id", h.RemoveItem)
	app.Delete("/cart", h.ClearCart)
	return app
}

func cartWith(t *testing.T, price float64, quantity int) *domain.Cart {
	t.Helper()
	cart := domain.New()
	require.NoError(t, cart.AddItem(catalog.Product{
		ID: "p1", Price: price, Stock: 99, IsActive: true,
	}, quantity))
	return cart
}

func TestCartHandler_GetCart(t *testing.T) {
	t.Run("IncludesTotals", func(t *testing.T) {
		mockService := new(MockCartService)
		app := setupApp(mockService)

		mockService.On("GetCart", mock.Anything, "s1").Return(cartWith(t, 1400, 2), nil).Once()

		req := httptest.NewRequest("GET", "/cart", nil)
		req.Header.Set(SessionHeader, "s1")
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body CartResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, 2, body.ItemCount)
		assert.Equal(t, 2800.0, body.Subtotal)
		assert.Equal(t, 1500.0, body.Shipping.Shipping)
		assert.Equal(t, 7200.0, body.Shipping.AmountNeededForFreeShipping)
		assert.Equal(t, 4300.0, body.Total)
		mockService.AssertExpectations(t)
	})

	t.Run("MissingSession", func(t *testing.T) {
		mockService := new(MockCartService)
		app := setupApp(mockService)

		req := httptest.NewRequest("GET", "/cart", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestCartHandler_AddItem(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockService := new(MockCartService)
		app := setupApp(mockService)

		mockService.On("AddItem", mock.Anything, "s1", "p1", 2).Return(cartWith(t, 1000, 2), nil).Once()

		body, _ := json.Marshal(AddItemRequest{ProductID: "p1", Quantity: 2})
		req := httptest.NewRequest("POST", "/cart/items", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(SessionHeader, "s1")
		resp, err := app.Test(req)

		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		mockService.AssertExpectations(t)
	})

	t.Run("OutOfStock", func(t *testing.T) {
		mockService := new(MockCartService)
		app := setupApp(mockService)

		mockService.On("AddItem", mock.Anything, "s1", "p1", 5).
			Return(nil, &domain.OutOfStockError{ProductID: "p1", Available: 3}).Once()

		body, _ := json.Marshal(AddItemRequest{ProductID: "p1", Quantity: 5})
		req := httptest.NewRequest("POST", "/cart/items", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(SessionHeader, "s1")
		resp, err := app.Test(req)

		require.NoError(t, err)
		assert.Equal(t, http.StatusConflict, resp.StatusCode)

		var payload map[string]interface{}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
		assert.Equal(t, float64(3), payload["available"])
	})

	t.Run("InactiveProduct", func(t *testing.T) {
		mockService := new(MockCartService)
		app := setupApp(mockService)

		mockService.On("AddItem", mock.Anything, "s1", "p6", 1).
			Return(nil, domain.ErrProductInactive).Once()

		body, _ := json.Marshal(AddItemRequest{ProductID: "p6", Quantity: 1})
		req := httptest.NewRequest("POST", "/cart/items", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(SessionHeader, "s1")
		resp, err := app.Test(req)

		require.NoError(t, err)
		assert.Equal(t, http.StatusConflict, resp.StatusCode)
	})

	t.Run("UnknownProduct", func(t *testing.T) {
		mockService := new(MockCartService)
		app := setupApp(mockService)

		mockService.On("AddItem", mock.Anything, "s1", "ghost", 1).
			Return(nil, catalog.ErrProductNotFound).Once()

		body, _ := json.Marshal(AddItemRequest{ProductID: "ghost", Quantity: 1})
		req := httptest.NewRequest("POST", "/cart/items", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(SessionHeader, "s1")
		resp, err := app.Test(req)

		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("MissingProductID", func(t *testing.T) {
		mockService := new(MockCartService)
		app := setupApp(mockService)

		body, _ := json.Marshal(AddItemRequest{Quantity: 1})
		req := httptest.NewRequest("POST", "/cart/items", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(SessionHeader, "s1")
		resp, err := app.Test(req)

		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestCartHandler_UpdateItem(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockService := new(MockCartService)
		app := setupApp(mockService)

		mockService.On("UpdateItemQuantity", mock.Anything, "s1", "line-1", 3).
			Return(cartWith(t, 1000, 3), nil).Once()

		body, _ := json.Marshal(UpdateQuantityRequest{Quantity: 3})
		req := httptest.NewRequest("PUT", "/cart/items/line-1", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(SessionHeader, "s1")
		resp, err := app.Test(req)

		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		mockService.AssertExpectations(t)
	})

	t.Run("ItemNotFound", func(t *testing.T) {
		mockService := new(MockCartService)
		app := setupApp(mockService)

		mockService.On("UpdateItemQuantity", mock.Anything, "s1", "missing", 3).
			Return(nil, domain.ErrItemNotFound).Once()

		body, _ := json.Marshal(UpdateQuantityRequest{Quantity: 3})
		req := httptest.NewRequest("PUT", "/cart/items/missing", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(SessionHeader, "s1")
		resp, err := app.Test(req)

		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestCartHandler_RemoveItem(t *testing.T) {
	mockService := new(MockCartService)
	app := setupApp(mockService)

	mockService.On("RemoveItem", mock.Anything, "s1", "line-1").Return(domain.New(), nil).Once()

	req := httptest.NewRequest("DELETE", "/cart/items/line-1", nil)
	req.Header.Set(SessionHeader, "s1")
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	mockService.AssertExpectations(t)
}

func TestCartHandler_ClearCart(t *testing.T) {
	mockService := new(MockCartService)
	app := setupApp(mockService)

	mockService.On("ClearCart", mock.Anything, "s1").Return(nil).Once()

	req := httptest.NewRequest("DELETE", "/cart", nil)
	req.Header.Set(SessionHeader, "s1")
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	mockService.AssertExpectations(t)
}
