package handlers

import (
	"errors"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"
	g "maragu.dev/gomponents"

	"github.com/peace-building-initiative/site/inquiry"
)

// createTestContext creates a Fiber context for testing
func createTestContext(t *testing.T, htmx bool) *fiber.Ctx {
	app := fiber.New()
	ctx := app.AcquireCtx(&fasthttp.RequestCtx{})
	t.Cleanup(func() { app.ReleaseCtx(ctx) })
	if htmx {
		ctx.Request().Header.Set("HX-Request", "true")
	}
	return ctx
}

func TestIsHTMX(t *testing.T) {
	assert.True(t, isHTMX(createTestContext(t, true)))
	assert.False(t, isHTMX(createTestContext(t, false)))
}

func TestInquiryError(t *testing.T) {
	fieldErr := &inquiry.FieldError{Field: inquiry.FieldName, Message: "Name is required"}
	passThrough := func(result g.Node) g.Node { return result }

	t.Run("htmx renders the message", func(t *testing.T) {
		ctx := createTestContext(t, true)
		require.NoError(t, inquiryError(ctx, fieldErr, passThrough))
		assert.Contains(t, string(ctx.Response().Body()), "Name is required")
		assert.Contains(t, string(ctx.Response().Body()), `role="alert"`)
	})

	t.Run("plain request becomes a 400", func(t *testing.T) {
		ctx := createTestContext(t, false)
		err := inquiryError(ctx, fieldErr, passThrough)

		var fe *fiber.Error
		require.True(t, errors.As(err, &fe))
		assert.Equal(t, fiber.StatusBadRequest, fe.Code)
		assert.Equal(t, "Name is required", fe.Message)
	})

	t.Run("other errors pass through", func(t *testing.T) {
		ctx := createTestContext(t, true)
		boom := errors.New("boom")
		assert.Same(t, boom, inquiryError(ctx, boom, passThrough))
	})
}

func TestValidationErrorResponse(t *testing.T) {
	ctx := createTestContext(t, true)
	require.NoError(t, ValidationErrorResponse(ctx, "Please enter a valid email address"))
	assert.Contains(t, string(ctx.Response().Body()), "Please enter a valid email address")
}
