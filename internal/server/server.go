// Package server defines the core Server struct that composes the app's
// main dependencies.
//
// It owns the lifecycle of:
//   - configuration
//   - logger
//   - the form registry
//   - the notification dispatcher and its provider clients
//   - http.Server (local development only; Lambda needs none)
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/deppfellow/form-handler/internal/config"
	"github.com/deppfellow/form-handler/internal/form"
	"github.com/deppfellow/form-handler/internal/lib/email"
	"github.com/deppfellow/form-handler/internal/lib/slack"
	"github.com/deppfellow/form-handler/internal/notify"
)

// Server is the application container that holds shared resources.
//
// Everything it holds is read-only after New, so a single Server serves
// every request (or Lambda invocation) concurrently.
type Server struct {
	Config *config.Config
	Logger *zerolog.Logger

	// Forms is the registry of every configured form.
	Forms *form.Registry

	// Dispatcher sends notifications through the configured channels.
	Dispatcher *notify.Dispatcher

	httpServer *http.Server
}

// New constructs a Server: it loads the form set and builds the
// notification providers selected by cfg.
func New(cfg *config.Config, logger *zerolog.Logger) (*Server, error) {
	forms, err := LoadForms(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to load forms: %w", err)
	}

	mailer, err := newMailer(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize email provider: %w", err)
	}

	var chat notify.ChatNotifier
	if cfg.Slack.Enabled() {
		chat = slack.NewClient(cfg.Slack.Endpoint, nil, logger)
	}

	dispatcher := notify.NewDispatcher(mailer, chat, cfg.Slack.Channel, cfg.Email.Domain, logger)

	logger.Info().
		Strs("forms", forms.IDs()).
		Strs("channels", dispatcher.Channels()).
		Msg("server initialized")

	return &Server{
		Config:     cfg,
		Logger:     logger,
		Forms:      forms,
		Dispatcher: dispatcher,
	}, nil
}

// LoadForms picks the form source: an external file when configured,
// otherwise the embedded test or production set.
func LoadForms(cfg *config.Config) (*form.Registry, error) {
	if cfg.Forms.Path != "" {
		return form.LoadFile(cfg.Forms.Path)
	}

	if cfg.Primary.Test {
		return form.LoadEmbedded(form.TestSet)
	}

	return form.LoadEmbedded(form.ProductionSet)
}

// newMailer returns nil (no email channel) when the selected provider is
// not configured.
func newMailer(cfg *config.Config, logger *zerolog.Logger) (notify.Mailer, error) {
	if !cfg.Email.Enabled() {
		if cfg.Email.Provider != config.ProviderNone {
			logger.Warn().
				Str("provider", cfg.Email.Provider).
				Msg("email provider not configured, email notifications disabled")
		}

		return nil, nil
	}

	switch cfg.Email.Provider {
	case config.ProviderSMTP:
		client, err := email.NewSMTPClient(email.SMTPConfig{
			Host:     cfg.Email.SMTPHost,
			Port:     cfg.Email.SMTPPort,
			Username: cfg.Email.SMTPUsername,
			Password: cfg.Email.SMTPPassword,
			TLS:      cfg.Email.SMTPTLS,
		}, logger)
		if err != nil {
			return nil, err
		}

		return client, nil
	default:
		return email.NewClient(cfg.Email.APIKey, logger), nil
	}
}

// SetupHTTPServer configures the internal net/http server.
func (s *Server) SetupHTTPServer(handler http.Handler) {
	s.httpServer = &http.Server{
		Addr:    ":" + s.Config.Server.Port,
		Handler: handler,

		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}

// Start runs the HTTP server. SetupHTTPServer must be called first.
func (s *Server) Start() error {
	if s.httpServer == nil {
		return errors.New("HTTP server not initialized")
	}

	s.Logger.Info().
		Str("port", s.Config.Server.Port).
		Str("env", s.Config.Primary.Env).
		Msg("starting server")

	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the HTTP server, letting in-flight requests
// finish until ctx expires.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown HTTP server: %w", err)
	}

	return nil
}
