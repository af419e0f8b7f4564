package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	g "maragu.dev/gomponents"

	"github.com/peace-building-initiative/site/inquiry"
	"github.com/peace-building-initiative/site/ui"
)

// ValidationErrorResponse returns a validation error response
func ValidationErrorResponse(c *fiber.Ctx, message string) error {
	return render(c, ui.ValidationError(message))
}

// inquiryError answers a failed submission. htmx gets the form back with the
// message in place and the visitor's input kept; a plain post gets a 400
// page. Anything but a field error is passed on to the error handler.
func inquiryError(c *fiber.Ctx, err error, rerender func(result g.Node) g.Node) error {
	var fe *inquiry.FieldError
	if !errors.As(err, &fe) {
		return err
	}
	if !isHTMX(c) {
		return fiber.NewError(fiber.StatusBadRequest, fe.Message)
	}
	return render(c, rerender(ui.ValidationError(fe.Message)))
}
