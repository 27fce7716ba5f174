package rest

import (
	_ "embed"
	"net/http"

	"github.com/labstack/echo/v4"
)

//go:embed openapi.json
var openAPIDocument []byte

// OpenAPIDocument serves the machine-readable API description.
// GET /openapi.json
func (h *Handler) OpenAPIDocument(c echo.Context) error {
	return c.JSONBlob(http.StatusOK, openAPIDocument)
}
