package handler

import (
	"net/http"
	"strings"

	"snack-store/internal/features/auth/ports"

	"github.com/gofiber/fiber/v2"
)

func bearerToken(c *fiber.Ctx) (string, bool) {
	header := c.Get(fiber.HeaderAuthorization)
	token, found := strings.CutPrefix(header, "Bearer ")
	return token, found && token != ""
}

// RequireAuth resolves the Bearer token and stores the user under the
// request locals keys "user" and "userId". Requests without a valid session
// are rejected with 401.
func RequireAuth(service ports.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, ok := bearerToken(c)
		if !ok {
			return c.Status(http.StatusUnauthorized).JSON(fiber.Map{
				"error": "Authorization header is required",
			})
		}

		user, err := service.Authenticate(c.Context(), token)
		if err != nil {
			return c.Status(http.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid or expired token",
			})
		}

		c.Locals("user", user)
		c.Locals("userId", user.ID)
		return c.Next()
	}
}
