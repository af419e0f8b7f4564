// Package local names the values middleware leaves in a request's locals.
package local

import "github.com/gofiber/fiber/v2"

// RequestIDKey is where the requestid middleware stores the request id.
const RequestIDKey = "requestid"

func GetRequestID(c *fiber.Ctx) string {
	id, _ := c.Locals(RequestIDKey).(string)
	return id
}

func SetRequestID(c *fiber.Ctx, id string) {
	c.Locals(RequestIDKey, id)
}
