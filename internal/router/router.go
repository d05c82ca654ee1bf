// Package router initializes the HTTP router (using Echo).
//
// It registers the middlewares and maps paths to their handlers. The
// router serves local development; in production the Lambda runtime
// calls the form handler directly.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/deppfellow/form-handler/internal/handler"
	"github.com/deppfellow/form-handler/internal/middleware"
	"github.com/deppfellow/form-handler/internal/server"
)

// NewRouter builds the Echo instance with the global middleware chain,
// the error handler, and every route.
func NewRouter(s *server.Server, h *handler.Handlers) *echo.Echo {
	middlewares := middleware.NewMiddlewares(s)

	router := echo.New()
	router.HideBanner = true
	router.HidePort = true
	router.HTTPErrorHandler = middlewares.Global.GlobalErrorHandler

	// Order matters: the request id must exist before the context logger
	// captures it, and Recover must wrap everything after it.
	router.Use(
		middleware.RequestID(),
		middlewares.Global.CORS(),
		middlewares.Global.Secure(),
		middlewares.ContextEnhancer.EnhanceContext(),
		middlewares.Global.RequestLogger(),
		middlewares.Global.Recover(),
	)

	registerSystemRoutes(router, h)
	registerFormRoutes(router, h)

	return router
}

// registerFormRoutes accepts submissions on the root path and anywhere
// under /form, matching the Lambda path resolution: the segment after
// /form is the form id and trailing segments are ignored. Every method
// reaches the pipeline, which answers non-POST requests as empty posts.
func registerFormRoutes(r *echo.Echo, h *handler.Handlers) {
	r.Any("/", h.Form.Submit)
	r.Any("/form", h.Form.Submit)
	r.Any("/form/:id", h.Form.Submit)
	r.Any("/form/:id/*", h.Form.Submit)
}
