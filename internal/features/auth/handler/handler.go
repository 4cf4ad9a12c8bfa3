package handler

import (
	"errors"
	"net/http"

	"snack-store/internal/core/logger"
	"snack-store/internal/features/auth/domain"
	"snack-store/internal/features/auth/ports"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// AuthHandler handles HTTP requests for accounts and sessions.
type AuthHandler struct {
	service ports.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(service ports.AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

// SessionResponse pairs the user with the opaque session token.
type SessionResponse struct {
	User  *domain.User `json:"user"`
	Token string       `json:"token"`
}

// LoginRequest is the body for POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdatePasswordRequest is the body for PUT /auth/password.
type UpdatePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

// Register handles POST /auth/register.
// @Summary Create an account
// @Description Registers a new user and opens a session for it.
// @Tags Auth
// @Accept json
// @Produce json
// @Param registration body domain.Registration true "Account details"
// @Success 201 {object} SessionResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var reg domain.Registration
	if err := c.BodyParser(&reg); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	user, token, err := h.service.Register(c.Context(), reg)
	if err != nil {
		return h.authError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(SessionResponse{User: user, Token: token})
}

// Login handles POST /auth/login.
// @Summary Open a session
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "Email and password"
// @Success 200 {object} SessionResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	user, token, err := h.service.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		return h.authError(c, err)
	}

	return c.Status(http.StatusOK).JSON(SessionResponse{User: user, Token: token})
}

// Logout handles POST /auth/logout.
// @Summary Revoke the session token
// @Tags Auth
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Success 200 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	token, ok := bearerToken(c)
	if !ok {
		return c.Status(http.StatusUnauthorized).JSON(fiber.Map{
			"error": "Authorization header is required",
		})
	}

	if err := h.service.Logout(c.Context(), token); err != nil {
		return h.authError(c, err)
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{
		"message": "Logged out",
	})
}

// Me handles GET /auth/me.
// @Summary Get the authenticated user
// @Tags Auth
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Success 200 {object} domain.User
// @Failure 401 {object} map[string]string
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	user, ok := c.Locals("user").(*domain.User)
	if !ok {
		return c.Status(http.StatusUnauthorized).JSON(fiber.Map{
			"error": "Authentication required",
		})
	}

	return c.Status(http.StatusOK).JSON(user)
}

// UpdateProfile handles PUT /auth/me.
// @Summary Update the authenticated user's profile
// @Description Email cannot be changed.
// @Tags Auth
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param profile body ports.ProfileUpdate true "Profile fields"
// @Success 200 {object} domain.User
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /auth/me [put]
func (h *AuthHandler) UpdateProfile(c *fiber.Ctx) error {
	user, ok := c.Locals("userId").(string)
	if !ok || user == "" {
		return c.Status(http.StatusUnauthorized).JSON(fiber.Map{
			"error": "Authentication required",
		})
	}

	var update ports.ProfileUpdate
	if err := c.BodyParser(&update); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	updated, err := h.service.UpdateProfile(c.Context(), user, update)
	if err != nil {
		return h.authError(c, err)
	}

	return c.Status(http.StatusOK).JSON(updated)
}

// UpdatePassword handles PUT /auth/password.
// @Summary Change the authenticated user's password
// @Tags Auth
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param passwords body UpdatePasswordRequest true "Current and new password"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /auth/password [put]
func (h *AuthHandler) UpdatePassword(c *fiber.Ctx) error {
	user, ok := c.Locals("userId").(string)
	if !ok || user == "" {
		return c.Status(http.StatusUnauthorized).JSON(fiber.Map{
			"error": "Authentication required",
		})
	}

	var req UpdatePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if err := h.service.UpdatePassword(c.Context(), user, req.CurrentPassword, req.Password, req.ConfirmPassword); err != nil {
		return h.authError(c, err)
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{
		"message": "Password updated",
	})
}

// authError translates domain errors to HTTP responses.
func (h *AuthHandler) authError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrEmailTaken):
		return c.Status(http.StatusConflict).JSON(fiber.Map{
			"error": "Email is already registered",
		})
	case errors.Is(err, domain.ErrEmailRequired),
		errors.Is(err, domain.ErrPasswordTooShort),
		errors.Is(err, domain.ErrPasswordMismatch):
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	case errors.Is(err, domain.ErrInvalidCredentials):
		return c.Status(http.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid email or password",
		})
	case errors.Is(err, domain.ErrInvalidToken):
		return c.Status(http.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid or expired token",
		})
	case errors.Is(err, domain.ErrUserNotFound):
		return c.Status(http.StatusNotFound).JSON(fiber.Map{
			"error": "User not found",
		})
	default:
		logger.Get().Error("Auth operation failed", zap.Error(err))
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal server error",
		})
	}
}
