package middleware

import (
	"quizbot/internal/util"

	"github.com/gofiber/fiber/v2"
)

// RequestIDKey is the fiber locals key carrying the request ID.
const RequestIDKey = "request_id"

// RequestID tags every request with a ULID, honoring an inbound
// X-Request-ID header when one is supplied.
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(fiber.HeaderXRequestID)
		if id == "" {
			id = util.NewULID()
		}
		c.Locals(RequestIDKey, id)
		c.Set(fiber.HeaderXRequestID, id)
		return c.Next()
	}
}
