// Package api is the HTTP transport for the resolver: request shaping,
// status mapping and JSON serialization. No resolution logic lives here.
package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/timeanchor/timeanchor/internal/resolve"
)

// Handler holds the transport's single dependency.
type Handler struct {
	resolver *resolve.Resolver
}

// NewHandler wraps a resolver for HTTP serving.
func NewHandler(resolver *resolve.Resolver) *Handler {
	return &Handler{resolver: resolver}
}

// NewApp builds the fiber application with routes and middleware attached.
// Cross-origin access is deliberately unrestricted: the expected caller is a
// browser- or pipeline-hosted LLM front-end on an arbitrary origin.
func NewApp(handler *Handler) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "timeanchor",
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New())

	RegisterRoutes(app, handler)
	return app
}

// RegisterRoutes attaches all endpoints to the app.
func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	v1 := app.Group("/api/v1")
	v1.Post("/convert", handler.Convert)
	v1.Post("/interpret", handler.Interpret)
}
