package middleware

import "github.com/gofiber/fiber/v2"

// NoStore marks responses as not cacheable. Editor and admin payloads are
// per-user and must not be kept by shared caches.
func NoStore() fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Set(fiber.HeaderCacheControl, "no-store")
		return c.Next()
	}
}
