package handlers

import (
	"net/url"

	"github.com/gofiber/fiber/v2"
	"github.com/rohanthewiz/logger"
	g "maragu.dev/gomponents"

	"github.com/peace-building-initiative/site/inquiry"
	"github.com/peace-building-initiative/site/local"
	"github.com/peace-building-initiative/site/ui"
)

// HandleDonateModal opens the donation dialog. An unknown trigger opens
// nothing.
func (h *Handlers) HandleDonateModal(c *fiber.Ctx) error {
	t := c.Query("trigger")
	if !isHTMX(c) {
		return c.Redirect("/?donate="+url.QueryEscape(t), fiber.StatusFound)
	}

	dialog := inquiry.NewDonationDialog()
	trigger, ok := inquiry.ParseTrigger(t)
	if !ok {
		logger.Debug("Ignoring unknown donation trigger", "trigger", t)
		return render(c, ui.EmptyResponse())
	}
	dialog.Open(trigger)
	return render(c, ui.DonationModal(dialog, nil))
}

// HandleDonateClose dismisses the dialog. Its pending input is dropped with
// the fragment.
func (h *Handlers) HandleDonateClose(c *fiber.Ctx) error {
	if !isHTMX(c) {
		return c.Redirect("/", fiber.StatusFound)
	}
	if via, ok := inquiry.ParseDismissal(c.Query("via")); ok {
		logger.Debug("Donation dialog dismissed", "via", string(via))
	}
	return render(c, ui.EmptyResponse())
}

// HandleDonate hands a donation inquiry off to the visitor's mail client and
// closes the dialog.
func (h *Handlers) HandleDonate(c *fiber.Ctx) error {
	var values inquiry.DonationFormValues
	if err := c.BodyParser(&values); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid form submission")
	}

	trigger, ok := inquiry.ParseTrigger(c.FormValue("trigger"))
	if !ok {
		trigger = inquiry.TriggerNavbar
	}
	dialog := inquiry.NewDonationDialog()
	dialog.Open(trigger)
	dialog.Form().Load(values)

	uri, err := dialog.Submit(h.recipient)
	if err != nil {
		return inquiryError(c, err, func(result g.Node) g.Node {
			return ui.DonationModal(dialog, result)
		})
	}

	logger.Info("Donation inquiry handed off", "request_id", local.GetRequestID(c), "trigger", string(trigger))
	if !isHTMX(c) {
		return h.renderHandOff(c, uri)
	}
	// The dialog is closed, so only the hand-off lands in the modal root.
	return render(c, ui.MailtoHandOff(uri))
}
