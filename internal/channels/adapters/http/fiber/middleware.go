package fiber

import (
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	APIKeyHeader    = "X-Api-Key"
	RequestIDHeader = "X-Request-ID"

	requestIDLocal = "request_id"
)

// APIKeyMiddleware rejects requests whose X-Api-Key differs from serviceKey.
// It must run before body parsing so unauthenticated traffic costs nothing.
//
// The comparison is a plain string equality, not constant time.
func APIKeyMiddleware(serviceKey string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if serviceKey == "" || c.Get(APIKeyHeader) != serviceKey {
			return c.Status(http.StatusForbidden).JSON(ErrorResponse{
				Error:   "forbidden",
				Message: "Invalid or missing API key",
			})
		}
		return c.Next()
	}
}

// RequestID propagates X-Request-ID or generates a new one.
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(RequestIDHeader)
		if id == "" {
			id = uuid.New().String()
		}
		c.Locals(requestIDLocal, id)
		c.Set(RequestIDHeader, id)
		return c.Next()
	}
}

func AccessLog() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		log.Info().
			Str("request_id", requestID(c)).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", c.Response().StatusCode()).
			Dur("latency", time.Since(start)).
			Str("client_ip", c.IP()).
			Msg("request processed")

		return err
	}
}

func requestID(c *fiber.Ctx) string {
	id, _ := c.Locals(requestIDLocal).(string)
	return id
}
