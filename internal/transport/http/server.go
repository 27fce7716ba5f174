// Package http provides the HTTP server implementation for chatvault.
package http

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/chatvault/chatvault/internal/config"
	"github.com/chatvault/chatvault/internal/service"
	"github.com/chatvault/chatvault/internal/transport/http/rest"
)

// NewServer creates and configures the HTTP server. It serves the session
// API plus the liveness probe and the OpenAPI document.
func NewServer(svc *service.Service, cfg *config.Config) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	// Middleware
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	// Handlers
	h := rest.NewHandler(svc, cfg.Debug())

	// Register Routes
	h.RegisterRoutes(e)

	return e
}
