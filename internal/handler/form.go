package handler

import (
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/deppfellow/form-handler/internal/event"
	"github.com/deppfellow/form-handler/internal/middleware"
	"github.com/deppfellow/form-handler/internal/server"
	"github.com/deppfellow/form-handler/internal/service"
)

// maxBodyBytes caps the size of a form submission body.
const maxBodyBytes = 1 << 20

// FormHandler serves form submissions on the local HTTP server.
type FormHandler struct {
	Handler
	submissions *service.SubmissionService
}

// NewFormHandler constructs a FormHandler.
func NewFormHandler(s *server.Server, submissions *service.SubmissionService) *FormHandler {
	return &FormHandler{
		Handler:     NewHandler(s),
		submissions: submissions,
	}
}

// Submit runs the request through the submission pipeline.
func (h *FormHandler) Submit(c echo.Context) error {
	ev, err := eventFromHTTP(c.Request())
	if err != nil {
		middleware.GetLogger(c).Warn().Err(err).Msg("failed to read request body")
	}

	res := h.submissions.Process(c.Request().Context(), ev)

	return writeResponse(c, res)
}

// eventFromHTTP flattens an HTTP request into an Event. Multi-valued
// headers keep their first value, as API Gateway does. A body that cannot
// be read is treated as empty.
func eventFromHTTP(r *http.Request) (event.Event, error) {
	headers := make(event.Headers, len(r.Header))
	for name, values := range r.Header {
		if len(values) > 0 {
			headers[name] = values[0]
		}
	}

	ev := event.Event{
		Headers: headers,
		Path:    r.URL.Path,
	}

	if r.Body == nil {
		return ev, nil
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		return ev, err
	}

	ev.Body = string(body)

	return ev, nil
}
