package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/rohanthewiz/logger"

	"github.com/peace-building-initiative/site/config"
)

// staticPrefixes are the paths served from the static directory.
var staticPrefixes = []string{"/js/", "/css/", "/images/", "/favicon.png"}

// IsStaticAsset reports whether path belongs to the static directory.
func IsStaticAsset(path string) bool {
	for _, prefix := range staticPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

// GlobalRateLimiter limits every route. Static assets are not counted; one
// page load fetches dozens of them.
func GlobalRateLimiter() fiber.Handler {
	return limiter.New(limiter.Config{
		Next: func(c *fiber.Ctx) bool {
			return IsStaticAsset(c.Path())
		},
		Max:        config.ServerRateLimitMax,
		Expiration: config.ServerRateLimitExp,
	})
}

// InquiryRateLimiter is a strict rate limiter for form submissions (per IP)
func InquiryRateLimiter() fiber.Handler {
	return limiter.New(limiter.Config{
		Max:        config.InquiryRateLimitMax,
		Expiration: config.InquiryRateLimitExp,
		KeyGenerator: func(c *fiber.Ctx) string {
			// Rate limit per IP address
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			logger.Info("Inquiry rate limit exceeded", "ip", c.IP())
			return fiber.NewError(fiber.StatusTooManyRequests,
				"Too many submissions. Please try again later.")
		},
	})
}
