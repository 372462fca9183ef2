package middleware

import (
	"log"
	"strings"

	"bookclub/internal/services"

	"github.com/gofiber/fiber/v2"
)

// AuthRequired is a Fiber middleware that admits only requests carrying a valid access token.
// The authenticated user ID is stored as c.Locals("user_id") (uint).
func AuthRequired(authService *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" {
			return unauthorized(c, "Authorization header is required")
		}

		// Expected format: "Bearer <token>"
		tokenString := BearerToken(authHeader)
		if tokenString == "" {
			return unauthorized(c, "Authorization header format must be 'Bearer <token>'")
		}

		userID, err := authService.Authenticate(tokenString)
		if err != nil {
			log.Printf("JWT validation failed: %v", err)
			return unauthorized(c, services.PublicMessage(err))
		}

		c.Locals("user_id", userID)
		return c.Next()
	}
}

// BearerToken extracts the token of an "Authorization: Bearer <token>" header value.
func BearerToken(header string) string {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

func unauthorized(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": msg})
}
