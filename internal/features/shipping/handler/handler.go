package handler

import (
	"net/http"

	"snack-store/internal/features/shipping/domain"
	"snack-store/internal/features/shipping/ports"

	"github.com/gofiber/fiber/v2"
)

// ShippingHandler handles HTTP requests for shipping quotes.
type ShippingHandler struct {
	calculator ports.Calculator
}

// NewShippingHandler creates a new ShippingHandler.
func NewShippingHandler(calculator ports.Calculator) *ShippingHandler {
	return &ShippingHandler{
		calculator: calculator,
	}
}

// GetQuote handles GET /shipping/quote.
// @Summary Quote shipping for a subtotal
// @Description Returns the shipping cost, free-shipping eligibility and the amount still needed to reach free shipping.
// @Tags Shipping
// @Produce json
// @Param subtotal query number true "Cart subtotal"
// @Param postal_code query string false "Destination postal code (reserved for zone pricing)"
// @Param city query string false "Destination city"
// @Param province query string false "Destination province"
// @Success 200 {object} domain.Quote
// @Failure 400 {object} map[string]string
// @Router /shipping/quote [get]
func (h *ShippingHandler) GetQuote(c *fiber.Ctx) error {
	subtotal := c.QueryFloat("subtotal", -1)
	if subtotal < 0 {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "A non-negative subtotal is required",
		})
	}

	var hint *domain.LocalityHint
	if c.Query("postal_code") != "" || c.Query("city") != "" || c.Query("province") != "" {
		hint = &domain.LocalityHint{
			PostalCode: c.Query("postal_code"),
			City:       c.Query("city"),
			Province:   c.Query("province"),
		}
	}

	quote := h.calculator.Quote(subtotal, hint)
	return c.Status(http.StatusOK).JSON(quote)
}
