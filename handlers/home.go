package handlers

import (
	"bytes"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/rohanthewiz/logger"
	"github.com/rohanthewiz/serr"

	"github.com/peace-building-initiative/site/inquiry"
	"github.com/peace-building-initiative/site/ui"
)

const homePageKey = "home"

// HandleHome serves the page. ?donate=<trigger> opens the donation dialog for
// browsers without JavaScript; that variant is never cached.
func (h *Handlers) HandleHome(c *fiber.Ctx) error {
	if t := c.Query("donate"); t != "" {
		dialog := inquiry.NewDonationDialog()
		if trigger, ok := inquiry.ParseTrigger(t); ok {
			dialog.Open(trigger)
		}
		return render(c, ui.HomePage(h.homeView(inquiry.NewContactForm(inquiry.ContactSubmission{}), dialog)))
	}

	page, err := h.pages.GetOrBuild(homePageKey, h.renderHome)
	if err != nil {
		return err
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTML)
	return c.Send(page)
}

func (h *Handlers) renderHome() ([]byte, error) {
	var buf bytes.Buffer
	view := h.homeView(inquiry.NewContactForm(inquiry.ContactSubmission{}), inquiry.NewDonationDialog())
	if err := ui.HomePage(view).Render(&buf); err != nil {
		return nil, serr.Wrap(err, "failed to render home page")
	}
	logger.Debug("Rendered home page", "bytes", strconv.Itoa(buf.Len()))
	return buf.Bytes(), nil
}

// renderHandOff answers a form posted without htmx with a fresh page that
// carries the hand-off in the modal root.
func (h *Handlers) renderHandOff(c *fiber.Ctx, uri string) error {
	view := h.homeView(inquiry.NewContactForm(inquiry.ContactSubmission{}), inquiry.NewDonationDialog())
	view.HandOff = uri
	return render(c, ui.HomePage(view))
}

// HandleSection redirects to the section's anchor. Unknown sections land on
// the top of the page.
func (h *Handlers) HandleSection(c *fiber.Ctx) error {
	return c.Redirect(h.sections.Location(c.Params("id")), fiber.StatusFound)
}
