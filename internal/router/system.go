package router

import (
	"github.com/labstack/echo/v4"

	"github.com/deppfellow/form-handler/internal/handler"
)

// registerSystemRoutes registers endpoints that are not part of form
// processing.
func registerSystemRoutes(r *echo.Echo, h *handler.Handlers) {
	r.GET("/status", h.Status.CheckStatus)
}
