// Package handlers serves the site over fiber.
package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/peace-building-initiative/site/cache"
	"github.com/peace-building-initiative/site/content"
	"github.com/peace-building-initiative/site/inquiry"
	"github.com/peace-building-initiative/site/section"
	"github.com/peace-building-initiative/site/ui"
)

// Handlers holds what every request renders from. It is read-only after New.
type Handlers struct {
	site         content.Site
	sections     *section.Registry
	pages        *cache.Cache[[]byte]
	assetVersion string
	recipient    string
}

func New(site content.Site, sections *section.Registry, pages *cache.Cache[[]byte], assetVersion, recipient string) *Handlers {
	return &Handlers{
		site:         site,
		sections:     sections,
		pages:        pages,
		assetVersion: assetVersion,
		recipient:    recipient,
	}
}

// Mount registers the site's routes.
func (h *Handlers) Mount(app *fiber.App) {
	app.Get("/", h.HandleHome)
	app.Get("/section/:id", h.HandleSection)

	// Donation dialog fragments
	app.Get("/modal/donate", h.HandleDonateModal)
	app.Get("/modal/donate/close", h.HandleDonateClose)

	api := app.Group("/api", InquiryRateLimiter())
	api.Post("/contact", h.HandleContact)
	api.Post("/donate", h.HandleDonate)

	app.Get("/sitemap.xml", HandleSitemap)
	app.Get("/robots.txt", HandleRobots)
	app.Get("/health", h.HandleHealth)
}

func (h *Handlers) homeView(contact *inquiry.ContactForm, dialog *inquiry.DonationDialog) ui.HomeView {
	return ui.HomeView{
		Site:         h.site,
		Sections:     h.sections,
		Contact:      contact,
		Dialog:       dialog,
		AssetVersion: h.assetVersion,
	}
}
