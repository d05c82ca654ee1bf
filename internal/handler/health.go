package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/deppfellow/form-handler/internal/middleware"
	"github.com/deppfellow/form-handler/internal/server"
)

// StatusHandler exposes a system endpoint describing the running
// configuration: which forms are registered and which notification
// channels are live.
type StatusHandler struct {
	Handler
}

// NewStatusHandler constructs a StatusHandler.
func NewStatusHandler(s *server.Server) *StatusHandler {
	return &StatusHandler{
		Handler: NewHandler(s),
	}
}

// StatusResponse is the body of GET /status.
type StatusResponse struct {
	Status      string    `json:"status"`
	Timestamp   time.Time `json:"timestamp"`
	Environment string    `json:"environment"`
	Forms       []string  `json:"forms"`
	Channels    []string  `json:"channels"`
}

// CheckStatus reports the service status.
func (h *StatusHandler) CheckStatus(c echo.Context) error {
	logger := middleware.GetLogger(c).With().
		Str("operation", "status_check").
		Logger()

	res := StatusResponse{
		Status:      "healthy",
		Timestamp:   time.Now().UTC(),
		Environment: h.server.Config.Primary.Env,
		Forms:       h.server.Forms.IDs(),
		Channels:    h.server.Dispatcher.Channels(),
	}

	if len(res.Channels) == 0 {
		logger.Warn().Msg("no notification channels configured")
	}

	if err := c.JSON(http.StatusOK, res); err != nil {
		logger.Error().Err(err).Msg("failed to write JSON response")

		return fmt.Errorf("failed to write JSON response: %w", err)
	}

	return nil
}
