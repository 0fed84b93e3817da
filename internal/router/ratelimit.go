package router

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

// RateLimitWrite limits mutation endpoints per authenticated user
// (falling back to IP for unauthenticated callers). The window and
// ceiling come from RATE_LIMIT_TX_MAX / RATE_LIMIT_TX_WINDOW_SECONDS.
func RateLimitWrite() fiber.Handler {
	max := 60
	if v := strings.TrimSpace(os.Getenv("RATE_LIMIT_TX_MAX")); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			max = parsed
		}
	}

	window := time.Minute
	if v := strings.TrimSpace(os.Getenv("RATE_LIMIT_TX_WINDOW_SECONDS")); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			window = time.Duration(parsed) * time.Second
		}
	}

	return limiter.New(limiter.Config{
		Max:        max,
		Expiration: window,
		KeyGenerator: func(c *fiber.Ctx) string {
			if uid, ok := c.Locals("user_id").(string); ok && uid != "" {
				return uid
			}
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{"error": "too_many_requests"})
		},
	})
}
