package server_test

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deppfellow/form-handler/internal/config"
	"github.com/deppfellow/form-handler/internal/errs"
	"github.com/deppfellow/form-handler/internal/server"
)

func baseConfig() *config.Config {
	return &config.Config{
		Primary:       config.Primary{Env: "development", Test: true},
		Server:        config.ServerConfig{Port: "0", DefaultRedirect: "https://foo.dev"},
		Email:         config.EmailConfig{Provider: config.ProviderNone},
		Observability: config.DefaultObservabilityConfig(),
	}
}

func TestNew_TestForms(t *testing.T) {
	logger := zerolog.Nop()

	s, err := server.New(baseConfig(), &logger)
	require.NoError(t, err)

	assert.Equal(t, []string{"intake", "support", "contact"}, s.Forms.IDs())
	assert.Empty(t, s.Dispatcher.Channels())
}

func TestNew_Channels(t *testing.T) {
	cfg := baseConfig()
	cfg.Email = config.EmailConfig{Provider: config.ProviderResend, APIKey: "re_test"}
	cfg.Slack = config.SlackConfig{Channel: "#leads", Endpoint: "https://hooks.slack.com/services/x"}

	logger := zerolog.Nop()
	s, err := server.New(cfg, &logger)
	require.NoError(t, err)

	assert.Equal(t, []string{errs.ChannelEmail, errs.ChannelChat}, s.Dispatcher.Channels())
}

func TestNew_SMTPChannel(t *testing.T) {
	cfg := baseConfig()
	cfg.Email = config.EmailConfig{Provider: config.ProviderSMTP, SMTPHost: "localhost", SMTPPort: 2525}

	logger := zerolog.Nop()
	s, err := server.New(cfg, &logger)
	require.NoError(t, err)

	assert.Equal(t, []string{errs.ChannelEmail}, s.Dispatcher.Channels())
}

func TestNew_BadFormsPath(t *testing.T) {
	cfg := baseConfig()
	cfg.Forms.Path = "/does/not/exist.yaml"

	logger := zerolog.Nop()
	_, err := server.New(cfg, &logger)
	require.Error(t, err)
}

func TestLoadForms_Production(t *testing.T) {
	cfg := baseConfig()
	cfg.Primary.Test = false

	forms, err := server.LoadForms(cfg)
	require.NoError(t, err)
	assert.Equal(t, 3, forms.Len())
}

func TestStartWithoutSetup(t *testing.T) {
	logger := zerolog.Nop()
	s, err := server.New(baseConfig(), &logger)
	require.NoError(t, err)

	require.Error(t, s.Start())
	require.NoError(t, s.Shutdown(context.Background()))
}
