package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Locals key para el request ID.
const LocalRequestID = "request_id"

// RequestIDMiddleware asigna un ID único a cada request y lo propaga en el
// header X-Request-ID de la respuesta. Si el cliente ya manda uno, se respeta.
func RequestIDMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		requestID := c.Get("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}

		c.Locals(LocalRequestID, requestID)
		c.Set("X-Request-ID", requestID)

		return c.Next()
	}
}
