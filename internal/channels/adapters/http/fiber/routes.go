package fiber

import (
	"github.com/gofiber/fiber/v2"
)

// NewApp builds the fiber application with middlewares and routes wired.
// /health is public, everything else requires the service API key.
func NewApp(h *ChannelHandler, serviceKey string) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "zyra-views",
		DisableStartupMessage: true,
	})

	app.Use(RequestID())
	app.Use(AccessLog())

	app.Get("/health", h.Health)

	gate := APIKeyMiddleware(serviceKey)
	app.Post("/stats", gate, h.GetStats)
	app.Post("/post-check", gate, h.CheckPost)

	return app
}
