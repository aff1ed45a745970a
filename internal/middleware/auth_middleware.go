package middleware

import (
	"github.com/gofiber/fiber/v2"
)

// AuthTokenKey is the request-local slot holding the caller's bearer
// token, forwarded verbatim to the main backend.
const AuthTokenKey = "authToken"

// RequireAuth rejects requests without an Authorization header before
// any backend call is made. The token itself is validated upstream.
func RequireAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Get(fiber.HeaderAuthorization)
		if token == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Authorization required")
		}
		c.Locals(AuthTokenKey, token)
		return c.Next()
	}
}

// AuthToken reads the token stashed by RequireAuth.
func AuthToken(c *fiber.Ctx) string {
	token, _ := c.Locals(AuthTokenKey).(string)
	return token
}
