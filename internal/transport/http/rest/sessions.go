package rest

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/chatvault/chatvault/internal/domain"
	"github.com/chatvault/chatvault/internal/service"
)

// CreateSession creates a session.
// POST /sessions
func (h *Handler) CreateSession(c echo.Context) error {
	var req domain.CreateSessionRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	ctx := c.Request().Context()

	session, err := h.service.CreateSession(ctx, req.UserID, req.Title, req.Messages)
	if err != nil {
		return h.writeError(c, err)
	}
	return c.JSON(http.StatusCreated, session)
}

// ListSessions lists a user's sessions, newest first.
// GET /sessions?userId=&limit=&skip=
func (h *Handler) ListSessions(c echo.Context) error {
	userID := c.QueryParam("userId")

	limit := service.DefaultListLimit
	if l := c.QueryParam("limit"); l != "" {
		val, err := strconv.Atoi(l)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "limit must be an integer"})
		}
		limit = val
	}
	skip := 0
	if sk := c.QueryParam("skip"); sk != "" {
		val, err := strconv.Atoi(sk)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "skip must be an integer"})
		}
		skip = val
	}

	ctx := c.Request().Context()

	sessions, err := h.service.ListSessions(ctx, userID, limit, skip)
	if err != nil {
		return h.writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"sessions": sessions,
	})
}

// GetSession retrieves one session scoped by owner.
// GET /sessions/:session_id?userId=
func (h *Handler) GetSession(c echo.Context) error {
	sessionID := c.Param("session_id")
	userID := c.QueryParam("userId")

	ctx := c.Request().Context()

	session, err := h.service.GetSession(ctx, sessionID, userID)
	if err != nil {
		return h.writeError(c, err)
	}
	return c.JSON(http.StatusOK, session)
}

// UpdateSession applies a partial update and returns the stored session.
// PUT /sessions/:session_id
func (h *Handler) UpdateSession(c echo.Context) error {
	sessionID := c.Param("session_id")

	var req domain.UpdateSessionRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	ctx := c.Request().Context()

	session, err := h.service.UpdateSession(ctx, sessionID, &req)
	if err != nil {
		return h.writeError(c, err)
	}
	return c.JSON(http.StatusOK, session)
}

// DeleteSession removes a session scoped by owner.
// DELETE /sessions/:session_id?userId=
func (h *Handler) DeleteSession(c echo.Context) error {
	sessionID := c.Param("session_id")
	userID := c.QueryParam("userId")

	ctx := c.Request().Context()

	if err := h.service.DeleteSession(ctx, sessionID, userID); err != nil {
		return h.writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]bool{"deleted": true})
}

// writeError maps the store's error taxonomy onto HTTP status codes. The
// not-found response is identical whether the id is unknown or the session
// belongs to another user.
func (h *Handler) writeError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidArgument):
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		return c.JSON(http.StatusNotFound, map[string]string{"error": "session not found"})
	}

	body := map[string]string{"error": "internal server error"}
	if h.debug {
		body["detail"] = err.Error()
	}
	return c.JSON(http.StatusInternalServerError, body)
}
