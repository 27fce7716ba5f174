// Package rest provides the REST handlers for chatvault.
package rest

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/chatvault/chatvault/internal/service"
)

// Handler handles HTTP requests.
type Handler struct {
	service *service.Service
	debug   bool
}

// NewHandler creates a new handler. When debug is set, backend failures
// include a diagnostic detail field in the response body.
func NewHandler(service *service.Service, debug bool) *Handler {
	return &Handler{
		service: service,
		debug:   debug,
	}
}

// RegisterRoutes registers routes with the echo server.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	// Session API
	e.POST("/sessions", h.CreateSession)
	e.GET("/sessions", h.ListSessions)
	e.GET("/sessions/:session_id", h.GetSession)
	e.PUT("/sessions/:session_id", h.UpdateSession)
	e.DELETE("/sessions/:session_id", h.DeleteSession)

	e.GET("/health", h.Health)
	e.GET("/openapi.json", h.OpenAPIDocument)
}

// Health returns health status.
func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":  "healthy",
		"version": "0.1.0",
	})
}
