package handler

import (
	"errors"
	"net/http"

	"snack-store/internal/core/logger"
	cartdomain "snack-store/internal/features/cart/domain"
	carthandler "snack-store/internal/features/cart/handler"
	catalog "snack-store/internal/features/catalog/domain"
	"snack-store/internal/features/orders/domain"
	"snack-store/internal/features/orders/ports"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// OrderHandler handles HTTP requests for checkout and order lookups.
// Every route expects an authenticated user id in the request locals.
type OrderHandler struct {
	service ports.OrderService
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(service ports.OrderService) *OrderHandler {
	return &OrderHandler{service: service}
}

// CheckoutRequest is the body for POST /checkout.
type CheckoutRequest struct {
	ShippingAddress domain.ShippingAddress `json:"shippingAddress"`
	PaymentMethod   domain.PaymentMethod   `json:"paymentMethod"`
}

// UpdateStatusRequest is the body for PATCH /orders/:id/status.
type UpdateStatusRequest struct {
	Status domain.Status `json:"status"`
}

func userID(c *fiber.Ctx) (string, bool) {
	id, ok := c.Locals("userId").(string)
	return id, ok && id != ""
}

// Checkout handles POST /checkout.
// @Summary Place an order from the session's cart
// @Description Validates the cart against current stock, freezes it into an order and clears the cart.
// @Tags Orders
// @Accept json
// @Produce json
// @Param X-Session-ID header string true "Session identifier"
// @Param Authorization header string true "Bearer token"
// @Param checkout body CheckoutRequest true "Shipping address and payment method"
// @Success 201 {object} domain.Order
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /checkout [post]
func (h *OrderHandler) Checkout(c *fiber.Ctx) error {
	user, ok := userID(c)
	if !ok {
		return c.Status(http.StatusUnauthorized).JSON(fiber.Map{
			"error": "Authentication required",
		})
	}

	session := c.Get(carthandler.SessionHeader)
	if session == "" {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "X-Session-ID header is required",
		})
	}

	var req CheckoutRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	order, err := h.service.Checkout(c.Context(), session, user, req.ShippingAddress, req.PaymentMethod)
	if err != nil {
		return h.orderError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(order)
}

// ListOrders handles GET /orders.
// @Summary List the authenticated user's orders
// @Description Orders are sorted by creation time, newest first.
// @Tags Orders
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Success 200 {array} domain.Order
// @Failure 401 {object} map[string]string
// @Router /orders [get]
func (h *OrderHandler) ListOrders(c *fiber.Ctx) error {
	user, ok := userID(c)
	if !ok {
		return c.Status(http.StatusUnauthorized).JSON(fiber.Map{
			"error": "Authentication required",
		})
	}

	orders, err := h.service.ListOrdersByUser(c.Context(), user)
	if err != nil {
		return h.orderError(c, err)
	}

	return c.Status(http.StatusOK).JSON(orders)
}

// GetOrder handles GET /orders/:id.
// @Summary Get an order by id
// @Tags Orders
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "Order id"
// @Success 200 {object} domain.Order
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /orders/{id} [get]
func (h *OrderHandler) GetOrder(c *fiber.Ctx) error {
	user, ok := userID(c)
	if !ok {
		return c.Status(http.StatusUnauthorized).JSON(fiber.Map{
			"error": "Authentication required",
		})
	}

	order, err := h.service.GetOrderByID(c.Context(), c.Params("id"))
	if err != nil {
		return h.orderError(c, err)
	}
	if order.UserID != user {
		return c.Status(http.StatusNotFound).JSON(fiber.Map{
			"error": "Order not found",
		})
	}

	return c.Status(http.StatusOK).JSON(order)
}

// GetOrderByNumber handles GET /orders/number/:number.
// @Summary Get an order by its human-readable number
// @Tags Orders
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param number path string true "Order number"
// @Success 200 {object} domain.Order
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /orders/number/{number} [get]
func (h *OrderHandler) GetOrderByNumber(c *fiber.Ctx) error {
	user, ok := userID(c)
	if !ok {
		return c.Status(http.StatusUnauthorized).JSON(fiber.Map{
			"error": "Authentication required",
		})
	}

	order, err := h.service.GetOrderByNumber(c.Context(), c.Params("number"))
	if err != nil {
		return h.orderError(c, err)
	}
	if order.UserID != user {
		return c.Status(http.StatusNotFound).JSON(fiber.Map{
			"error": "Order not found",
		})
	}

	return c.Status(http.StatusOK).JSON(order)
}

// UpdateStatus handles PATCH /orders/:id/status.
// @Summary Update an order's status
// @Description Any valid status may follow any other.
// @Tags Orders
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "Order id"
// @Param status body UpdateStatusRequest true "New status"
// @Success 200 {object} domain.Order
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /orders/{id}/status [patch]
func (h *OrderHandler) UpdateStatus(c *fiber.Ctx) error {
	if _, ok := userID(c); !ok {
		return c.Status(http.StatusUnauthorized).JSON(fiber.Map{
			"error": "Authentication required",
		})
	}

	var req UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	order, err := h.service.UpdateOrderStatus(c.Context(), c.Params("id"), req.Status)
	if err != nil {
		return h.orderError(c, err)
	}

	return c.Status(http.StatusOK).JSON(order)
}

// orderError translates domain errors to HTTP responses.
func (h *OrderHandler) orderError(c *fiber.Ctx, err error) error {
	var oos *cartdomain.OutOfStockError
	switch {
	case errors.Is(err, domain.ErrEmptyCart):
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "Cart is empty",
		})
	case errors.Is(err, domain.ErrInvalidPaymentMethod):
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid payment method",
		})
	case errors.Is(err, domain.ErrInvalidStatus):
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid order status",
		})
	case errors.Is(err, domain.ErrOrderNotFound):
		return c.Status(http.StatusNotFound).JSON(fiber.Map{
			"error": "Order not found",
		})
	case errors.As(err, &oos):
		return c.Status(http.StatusConflict).JSON(fiber.Map{
			"error":     oos.Error(),
			"available": oos.Available,
		})
	case errors.Is(err, cartdomain.ErrProductInactive):
		return c.Status(http.StatusConflict).JSON(fiber.Map{
			"error": "A product in the cart is no longer available",
		})
	case errors.Is(err, catalog.ErrProductNotFound):
		return c.Status(http.StatusNotFound).JSON(fiber.Map{
			"error": "Product not found",
		})
	default:
		logger.Get().Error("Order operation failed", zap.Error(err))
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal server error",
		})
	}
}
