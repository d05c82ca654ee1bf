// Command lambda runs the form handler inside AWS Lambda behind an API
// Gateway proxy integration.
package main

import (
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/rs/zerolog/log"

	"github.com/deppfellow/form-handler/internal/config"
	"github.com/deppfellow/form-handler/internal/handler"
	"github.com/deppfellow/form-handler/internal/logger"
	"github.com/deppfellow/form-handler/internal/server"
	"github.com/deppfellow/form-handler/internal/service"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	l := logger.New(cfg.Observability)

	srv, err := server.New(cfg, &l)
	if err != nil {
		l.Fatal().Err(err).Msg("failed to initialize server")
	}

	services, err := service.NewServices(srv)
	if err != nil {
		l.Fatal().Err(err).Msg("failed to create services")
	}

	h := handler.NewLambdaHandler(services.Submission, &l)

	lambda.Start(h.Handle)
}
