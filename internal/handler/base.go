package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/deppfellow/form-handler/internal/event"
	"github.com/deppfellow/form-handler/internal/server"
)

// Handler is the base handler type that holds shared application
// dependencies. Concrete echo handlers embed it.
type Handler struct {
	server *server.Server
}

// NewHandler constructs a base Handler.
func NewHandler(s *server.Server) Handler {
	return Handler{server: s}
}

// writeResponse copies res onto the echo response verbatim, including the
// body of redirect responses.
func writeResponse(c echo.Context, res event.Response) error {
	header := c.Response().Header()
	for name, value := range res.Headers {
		header.Set(name, value)
	}

	c.Response().WriteHeader(res.StatusCode)

	_, err := c.Response().Write([]byte(res.Body))

	return err
}
