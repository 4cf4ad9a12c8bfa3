package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"snack-store/internal/core/config"
	"snack-store/internal/features/shipping/domain"
	"snack-store/internal/features/shipping/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupApp() *fiber.App {
	calc := service.NewFlatRateCalculator(config.ShippingConfig{
		FreeShippingThreshold: 10000,
		BaseCost:              1500,
	})
	app := fiber.New()
	app.Get("/shipping/quote", NewShippingHandler(calc).GetQuote)
	return app
}

func TestShippingHandler_GetQuote(t *testing.T) {
	t.Run("BelowThreshold", func(t *testing.T) {
		app := setupApp()

		req := httptest.NewRequest("GET", "/shipping/quote?subtotal=2800", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var quote domain.Quote
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&quote))
		assert.Equal(t, 1500.0, quote.Shipping)
		assert.False(t, quote.IsFreeShipping)
		assert.Equal(t, 7200.0, quote.AmountNeededForFreeShipping)
	})

	t.Run("FreeShipping", func(t *testing.T) {
		app := setupApp()

		req := httptest.NewRequest("GET", "/shipping/quote?subtotal=10000", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var quote domain.Quote
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&quote))
		assert.True(t, quote.IsFreeShipping)
		assert.Zero(t, quote.Shipping)
	})

	t.Run("HintDoesNotChangeResult", func(t *testing.T) {
		app := setupApp()

		req := httptest.NewRequest("GET", "/shipping/quote?subtotal=2800&postal_code=9410&city=Ushuaia", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var quote domain.Quote
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&quote))
		assert.Equal(t, 1500.0, quote.Shipping)
	})

	t.Run("MissingSubtotal", func(t *testing.T) {
		app := setupApp()

		req := httptest.NewRequest("GET", "/shipping/quote", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}
