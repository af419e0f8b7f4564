package config

import (
	"os"
	"strconv"
	"time"
)

const (
	// NavbarScrollThreshold is the scroll offset in pixels past which the navbar gets its solid background.
	NavbarScrollThreshold = 10

	SiteName    = "Peace Building Initiative"
	SiteTagline = "Tarime, Musoma, Tanzania"
)

// Server
var (
	ServerPort        = getEnv("PORT", "8000")
	ServerUploadLimit = getEnvInt("SERVER_BODY_LIMIT", 64*1024)
	BaseURL           = getEnv("BASE_URL", "https://peacebuildinginitiative.org")
	LogLevel          = getEnv("LOG_LEVEL", "info")
	StaticDir         = getEnv("STATIC_DIR", "./static")

	ServerRateLimitMax = getEnvInt("RATE_LIMIT_MAX", 120)
	ServerRateLimitExp = getEnvDuration("RATE_LIMIT_EXPIRATION", time.Minute)

	InquiryRateLimitMax = getEnvInt("INQUIRY_RATE_LIMIT_MAX", 10)
	InquiryRateLimitExp = getEnvDuration("INQUIRY_RATE_LIMIT_EXPIRATION", 10*time.Minute)
)

// Content
var (
	// ContactRecipient is the fixed address every mailto hand-off is addressed to.
	ContactRecipient = getEnv("CONTACT_RECIPIENT", "info@peacebuildinginitiative.org")
	ContentFile      = getEnv("SITE_CONTENT_FILE", "")
	PageCacheTTL     = getEnvDuration("PAGE_CACHE_TTL", time.Hour)
)

// CDN assets
var (
	TailwindCSSURL = getEnv("TAILWIND_URL", "https://cdn.tailwindcss.com")
	HTMXURL        = getEnv("HTMX_URL", "https://unpkg.com/htmx.org@2.0.4")
)

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	v, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}
