package middleware

import (
	"github.com/gofiber/fiber/v2"
)

// RequireRole gates a route on the role hierarchy: admin satisfies planner,
// planner satisfies member.
func RequireRole(requiredRole string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := GetCurrentUser(c)
		if user == nil {
			return Unauthorized("User not found")
		}

		if !user.HasRole(requiredRole) {
			return Forbidden("Insufficient permissions for this operation")
		}

		return c.Next()
	}
}
