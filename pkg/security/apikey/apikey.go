// Package apikey guards machine-to-machine webhooks with a shared key.
package apikey

import (
	"crypto/subtle"
	"net/http"

	"github.com/gofiber/fiber/v2"
)

const Header = "X-Intake-Key"

// NewMiddleware rejects requests whose X-Intake-Key does not match key. An
// empty key disables the endpoint entirely.
func NewMiddleware(key string) fiber.Handler {
	expected := []byte(key)
	return func(c *fiber.Ctx) error {
		if len(expected) == 0 {
			return c.Status(http.StatusServiceUnavailable).JSON(fiber.Map{"message": "intake is not configured"})
		}
		got := []byte(c.Get(Header))
		if subtle.ConstantTimeCompare(got, expected) != 1 {
			return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"message": "invalid intake key"})
		}
		return c.Next()
	}
}
