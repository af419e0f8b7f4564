package main

import (
	"os"

	"github.com/rohanthewiz/logger"
	"github.com/rohanthewiz/serr"

	"github.com/peace-building-initiative/site/assets"
	"github.com/peace-building-initiative/site/cache"
	"github.com/peace-building-initiative/site/config"
	"github.com/peace-building-initiative/site/content"
	h "github.com/peace-building-initiative/site/handlers"
	"github.com/peace-building-initiative/site/section"
	"github.com/peace-building-initiative/site/server"
)

func main() {
	logger.SetLogLevel(config.LogLevel)

	// Load site content
	site, err := content.Load(config.ContentFile)
	if err != nil {
		logger.LogErr(err, "failed to load site content")
		os.Exit(1)
	}

	sections := section.DefaultRegistry()
	if err := site.Validate(sections); err != nil {
		// Unknown targets render inert, so this is not fatal
		logger.LogErr(serr.Wrap(err, "site content"), "content references an unknown section")
	}

	// Fingerprint our own assets for cache busting
	version, err := assets.Version(os.DirFS(config.StaticDir), assets.Files...)
	if err != nil {
		logger.LogErr(err, "failed to fingerprint static assets")
	}

	// Initialize rendered page cache
	pages, err := cache.New[[]byte]("pages", config.PageCacheTTL, func(b []byte) int64 {
		return int64(len(b))
	})
	if err != nil {
		logger.LogErr(serr.Wrap(err, "failed to create page cache"), "startup")
		os.Exit(1)
	}
	defer pages.Close()

	app := server.New(h.New(site, sections, pages, version, config.ContactRecipient), server.DefaultOptions())

	logger.Info("Starting server", "port", config.ServerPort, "assets", version)
	if err := app.Listen(":" + config.ServerPort); err != nil {
		logger.LogErr(serr.Wrap(err, "server stopped"), "listen")
		os.Exit(1)
	}
}
