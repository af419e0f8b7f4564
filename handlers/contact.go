package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rohanthewiz/logger"
	g "maragu.dev/gomponents"

	"github.com/peace-building-initiative/site/inquiry"
	"github.com/peace-building-initiative/site/local"
	"github.com/peace-building-initiative/site/ui"
)

// HandleContact hands a contact submission off to the visitor's mail client.
func (h *Handlers) HandleContact(c *fiber.Ctx) error {
	var values inquiry.ContactSubmission
	if err := c.BodyParser(&values); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid form submission")
	}

	form := inquiry.NewContactForm(values)
	uri, err := form.Submit(h.recipient)
	if err != nil {
		return inquiryError(c, err, func(result g.Node) g.Node {
			return ui.ContactForm(form, result)
		})
	}

	logger.Info("Contact inquiry handed off", "request_id", local.GetRequestID(c))
	if !isHTMX(c) {
		return h.renderHandOff(c, uri)
	}
	// The form is empty again; the hand-off navigates to the mail client.
	return render(c, ui.ContactForm(form, ui.MailtoHandOff(uri)))
}
