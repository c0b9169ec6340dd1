package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/donaldgifford/emag-catalog/internal/emag"
)

// HealthHandler provides health and readiness endpoints.
type HealthHandler struct {
	tokens emag.TokenProvider
}

// NewHealthHandler creates a new HealthHandler. Readiness is tied to the
// upstream session credential: without it no catalog call can succeed.
func NewHealthHandler(tokens emag.TokenProvider) *HealthHandler {
	return &HealthHandler{tokens: tokens}
}

// Healthz returns 200 if the process is running.
func (*HealthHandler) Healthz(c echo.Context) error {
	return c.JSON(http.StatusOK, StatusResponse{Status: "ok"})
}

// Readyz returns 200 once a session credential is held, 503 otherwise.
// The first call triggers the credential probe.
func (h *HealthHandler) Readyz(c echo.Context) error {
	if _, err := h.tokens.Token(c.Request().Context()); err != nil {
		return c.JSON(http.StatusServiceUnavailable, StatusResponse{Status: "unavailable"})
	}
	return c.JSON(http.StatusOK, StatusResponse{Status: "ready"})
}
