package handler

import (
	"errors"
	"net/http"

	"snack-store/internal/core/logger"
	"snack-store/internal/features/cart/domain"
	"snack-store/internal/features/cart/ports"
	catalog "snack-store/internal/features/catalog/domain"
	shipping "snack-store/internal/features/shipping/domain"
	shippingports "snack-store/internal/features/shipping/ports"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// SessionHeader carries the session identifier owning the cart.
const SessionHeader = "X-Session-ID"

// CartHandler handles HTTP requests for the shopping cart.
type CartHandler struct {
	service    ports.CartService
	calculator shippingports.Calculator
}

// NewCartHandler creates a new CartHandler.
func NewCartHandler(service ports.CartService, calculator shippingports.Calculator) *CartHandler {
	return &CartHandler{
		service:    service,
		calculator: calculator,
	}
}

// CartResponse is the cart plus the totals the storefront renders next to it.
type CartResponse struct {
	Items     []domain.Item  `json:"items"`
	ItemCount int            `json:"itemCount"`
	Subtotal  float64        `json:"subtotal"`
	Shipping  shipping.Quote `json:"shippingCalculation"`
	Total     float64        `json:"total"`
}

// AddItemRequest is the body for POST /cart/items.
type AddItemRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// UpdateQuantityRequest is the body for PUT /cart/items/:id.
type UpdateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

func (h *CartHandler) cartResponse(cart *domain.Cart) CartResponse {
	subtotal := cart.Subtotal()
	quote := h.calculator.Quote(subtotal, nil)

	return CartResponse{
		Items:     cart.Items,
		ItemCount: cart.ItemCount(),
		Subtotal:  subtotal,
		Shipping:  quote,
		Total:     subtotal + quote.Shipping,
	}
}

func sessionID(c *fiber.Ctx) (string, bool) {
	id := c.Get(SessionHeader)
	return id, id != ""
}

// GetCart handles GET /cart.
// @Summary Get the session's cart
// @Description Returns the cart with item count, subtotal, shipping quote and total.
// @Tags Cart
// @Produce json
// @Param X-Session-ID header string true "Session identifier"
// @Success 200 {object} CartResponse
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /cart [get]
func (h *CartHandler) GetCart(c *fiber.Ctx) error {
	session, ok := sessionID(c)
	if !ok {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "X-Session-ID header is required",
		})
	}

	cart, err := h.service.GetCart(c.Context(), session)
	if err != nil {
		logger.Get().Error("Failed to get cart", zap.String("session_id", session), zap.Error(err))
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal server error",
		})
	}

	return c.Status(http.StatusOK).JSON(h.cartResponse(cart))
}

// AddItem handles POST /cart/items.
// @Summary Add a product to the cart
// @Description Adds a product by id, merging with an existing line for the same product.
// @Tags Cart
// @Accept json
// @Produce json
// @Param X-Session-ID header string true "Session identifier"
// @Param item body AddItemRequest true "Product and quantity"
// @Success 200 {object} CartResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /cart/items [post]
func (h *CartHandler) AddItem(c *fiber.Ctx) error {
	session, ok := sessionID(c)
	if !ok {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "X-Session-ID header is required",
		})
	}

	var req AddItemRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if req.ProductID == "" {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "productId is required",
		})
	}

	cart, err := h.service.AddItem(c.Context(), session, req.ProductID, req.Quantity)
	if err != nil {
		return h.cartError(c, session, err)
	}

	return c.Status(http.StatusOK).JSON(h.cartResponse(cart))
}

// UpdateItem handles PUT /cart/items/:id.
// @Summary Update a line's quantity
// @Description Replaces the quantity exactly; zero removes the line.
// @Tags Cart
// @Accept json
// @Produce json
// @Param X-Session-ID header string true "Session identifier"
// @Param id path string true "Line item id"
// @Param item body UpdateQuantityRequest true "New quantity"
// @Success 200 {object} CartResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /cart/items/{id} [put]
func (h *CartHandler) UpdateItem(c *fiber.Ctx) error {
	session, ok := sessionID(c)
	if !ok {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "X-Session-ID header is required",
		})
	}

	var req UpdateQuantityRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	cart, err := h.service.UpdateItemQuantity(c.Context(), session, c.Params("id"), req.Quantity)
	if err != nil {
		return h.cartError(c, session, err)
	}

	return c.Status(http.StatusOK).JSON(h.cartResponse(cart))
}

// RemoveItem handles DELETE /cart/items/:id.
// @Summary Remove a line from the cart
// @Description Removing an unknown line id is a no-op.
// @Tags Cart
// @Produce json
// @Param X-Session-ID header string true "Session identifier"
// @Param id path string true "Line item id"
// @Success 200 {object} CartResponse
// @Failure 400 {object} map[string]string
// @Router /cart/items/{id} [delete]
func (h *CartHandler) RemoveItem(c *fiber.Ctx) error {
	session, ok := sessionID(c)
	if !ok {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "X-Session-ID header is required",
		})
	}

	cart, err := h.service.RemoveItem(c.Context(), session, c.Params("id"))
	if err != nil {
		return h.cartError(c, session, err)
	}

	return c.Status(http.StatusOK).JSON(h.cartResponse(cart))
}

// ClearCart handles DELETE /cart.
// @Summary Empty the cart
// @Tags Cart
// @Produce json
// @Param X-Session-ID header string true "Session identifier"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Router /cart [delete]
func (h *CartHandler) ClearCart(c *fiber.Ctx) error {
	session, ok := sessionID(c)
	if !ok {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "X-Session-ID header is required",
		})
	}

	if err := h.service.ClearCart(c.Context(), session); err != nil {
		logger.Get().Error("Failed to clear cart", zap.String("session_id", session), zap.Error(err))
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal server error",
		})
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{
		"message": "Cart cleared",
	})
}

// cartError translates domain errors to HTTP responses.
func (h *CartHandler) cartError(c *fiber.Ctx, session string, err error) error {
	var oos *domain.OutOfStockError
	switch {
	case errors.As(err, &oos):
		return c.Status(http.StatusConflict).JSON(fiber.Map{
			"error":     oos.Error(),
			"available": oos.Available,
		})
	case errors.Is(err, domain.ErrProductInactive):
		return c.Status(http.StatusConflict).JSON(fiber.Map{
			"error": "This product is not available",
		})
	case errors.Is(err, domain.ErrItemNotFound):
		return c.Status(http.StatusNotFound).JSON(fiber.Map{
			"error": "Item not found in cart",
		})
	case errors.Is(err, catalog.ErrProductNotFound):
		return c.Status(http.StatusNotFound).JSON(fiber.Map{
			"error": "Product not found",
		})
	default:
		logger.Get().Error("Cart operation failed", zap.String("session_id", session), zap.Error(err))
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal server error",
		})
	}
}
