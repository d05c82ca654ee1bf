package service

import (
	"github.com/deppfellow/form-handler/internal/response"
	"github.com/deppfellow/form-handler/internal/server"
	"github.com/deppfellow/form-handler/internal/validation"
)

// Services is a container that groups all business services.
type Services struct {
	Submission *SubmissionService
}

// NewServices builds the services from the application container.
func NewServices(s *server.Server) (*Services, error) {
	builder := response.NewBuilder(s.Config.Server.DefaultRedirect, s.Config.Server.Origins())

	submission := NewSubmissionService(
		s.Forms,
		validation.New(),
		s.Dispatcher,
		builder,
		s.Logger,
		!s.Config.Primary.Test,
	)

	return &Services{
		Submission: submission,
	}, nil
}
