package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rohanthewiz/logger"
	"github.com/rohanthewiz/serr"

	"github.com/peace-building-initiative/site/local"
	"github.com/peace-building-initiative/site/ui"
)

// CustomErrorHandler renders every unhandled error as an HTML error page.
func CustomErrorHandler(ctx *fiber.Ctx, err error) error {
	// Status code defaults to 500
	code := fiber.StatusInternalServerError
	message := "Something went wrong on our side. Please try again later."

	// Retrieve the custom status code if it's a *fiber.Error
	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
		message = e.Message
	}

	if code >= fiber.StatusInternalServerError {
		logger.LogErr(serr.Wrap(err, "request "+local.GetRequestID(ctx)+" "+ctx.Path()), "request failed")
	}

	ctx.Status(code)
	return render(ctx, ui.ErrorPage(code, message))
}
