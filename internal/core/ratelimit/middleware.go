package ratelimit

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

// Middleware rejects clients over their budget with 429. Limiter errors let
// the request through.
func Middleware(limiter Limiter) fiber.Handler {
	return func(c *fiber.Ctx) error {
		allowed, err := limiter.Allow(c.UserContext(), c.IP())
		if err != nil {
			log.Warn().Err(err).Str("ip", c.IP()).Msg("⚠️ Rate limiter unavailable, allowing request")
			return c.Next()
		}
		if !allowed {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"ok":    false,
				"error": "too many requests",
			})
		}
		return c.Next()
	}
}
