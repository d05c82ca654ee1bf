package handler

import (
	"github.com/deppfellow/form-handler/internal/server"
	"github.com/deppfellow/form-handler/internal/service"
)

// Handlers is a container that groups all HTTP handlers, so router setup
// passes one object around instead of many.
type Handlers struct {
	Status *StatusHandler
	Form   *FormHandler
}

// NewHandlers constructs the handler container.
func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Status: NewStatusHandler(s),
		Form:   NewFormHandler(s, services.Submission),
	}
}
