package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"inventory-api/internal/policy"
	"inventory-api/internal/token"
)

const localsClaims = "claims"

// RequireAuth verifies the bearer token and stashes the claims in Locals for
// the handlers. Missing header and every verify failure look identical to
// the client.
func RequireAuth(tm *token.Manager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		auth := c.Get("Authorization")
		if !strings.HasPrefix(strings.ToLower(auth), "bearer ") {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid or expired token"})
		}

		claims, err := tm.Verify(auth[7:])
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid or expired token"})
		}

		c.Locals(localsClaims, policy.Claims{
			Role:    policy.Role(claims.Role),
			StaffID: claims.StaffID,
		})
		return c.Next()
	}
}

// ClaimsFrom reads the authenticated claims a RequireAuth upstream stored.
func ClaimsFrom(c *fiber.Ctx) (policy.Claims, bool) {
	claims, ok := c.Locals(localsClaims).(policy.Claims)
	return claims, ok
}
