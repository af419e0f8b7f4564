// Package server assembles the fiber app: middleware, static files and the
// site's routes.
package server

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"

	"github.com/peace-building-initiative/site/config"
	"github.com/peace-building-initiative/site/handlers"
	"github.com/peace-building-initiative/site/local"
)

// Options are the server's per-deployment settings.
type Options struct {
	StaticDir string
	BodyLimit int
	AccessLog bool
}

// DefaultOptions reads the environment-backed config.
func DefaultOptions() Options {
	return Options{
		StaticDir: config.StaticDir,
		BodyLimit: config.ServerUploadLimit,
		AccessLog: true,
	}
}

// New returns an app serving h. It does not listen.
func New(h *handlers.Handlers, opts Options) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.CustomErrorHandler,
		BodyLimit:    opts.BodyLimit,
		ReadTimeout:  30 * time.Second, // Prevent long-running requests
		WriteTimeout: 30 * time.Second, // Prevent long-running responses
	})

	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{
		Generator:  uuid.NewString,
		ContextKey: local.RequestIDKey,
	}))
	if opts.AccessLog {
		app.Use(fiberlogger.New(fiberlogger.Config{
			Format: "${time} ${locals:" + local.RequestIDKey + "} ${status} ${method} ${path} ${latency}\n",
		}))
	}

	// The map iframe and CDN scripts are cross-origin
	app.Use(helmet.New(helmet.Config{
		CrossOriginEmbedderPolicy: "unsafe-none",
	}))
	app.Use(compress.New())

	// Add rate limiter
	app.Use(handlers.GlobalRateLimiter())

	app.Get("/.well-known/appspecific/com.chrome.devtools.json", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusNoContent)
	})
	h.Mount(app)

	// Static files go last: a miss in the file handler resets the response
	// headers, so only asset paths reach it.
	if opts.StaticDir != "" {
		app.Static("/", opts.StaticDir, fiber.Static{
			Compress: true,
			MaxAge:   int((24 * time.Hour).Seconds()),
			Next: func(c *fiber.Ctx) bool {
				return !handlers.IsStaticAsset(c.Path())
			},
		})
	}
	return app
}
