package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setBaseEnv(t *testing.T) {
	t.Helper()

	t.Setenv("FORMHANDLER_PRIMARY_ENV", "production")
	t.Setenv("FORMHANDLER_SERVER_DEFAULT_REDIRECT", "https://foo.dev/thanks")
}

func TestEnvKey(t *testing.T) {
	for in, want := range map[string]string{
		"FORMHANDLER_PRIMARY_ENV":                 "primary.env",
		"FORMHANDLER_SERVER_DEFAULT_REDIRECT":     "server.default_redirect",
		"FORMHANDLER_EMAIL_SMTP_HOST":             "email.smtp_host",
		"FORMHANDLER_OBSERVABILITY_LOGGING_LEVEL": "observability.logging.level",
		"FORMHANDLER_FORMS_PATH":                  "forms.path",
	} {
		assert.Equal(t, want, envKey(in), in)
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	setBaseEnv(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Primary.Env)
	assert.False(t, cfg.Primary.Test)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "https://foo.dev/thanks", cfg.Server.DefaultRedirect)
	assert.Empty(t, cfg.Server.Origins())
	assert.Equal(t, ProviderResend, cfg.Email.Provider)
	assert.False(t, cfg.Email.Enabled())
	assert.False(t, cfg.Slack.Enabled())

	require.NotNil(t, cfg.Observability)
	assert.Equal(t, "form-handler", cfg.Observability.ServiceName)
	assert.Equal(t, "production", cfg.Observability.Environment)
	assert.Equal(t, "info", cfg.Observability.GetLogLevel())
	assert.Equal(t, "json", cfg.Observability.Logging.Format)
}

func TestLoadConfig_Full(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("FORMHANDLER_PRIMARY_TEST", "true")
	t.Setenv("FORMHANDLER_SERVER_PORT", "9000")
	t.Setenv("FORMHANDLER_SERVER_ALLOWED_ORIGINS", "https://foo.dev, https://www.foo.dev,")
	t.Setenv("FORMHANDLER_EMAIL_PROVIDER", "SMTP")
	t.Setenv("FORMHANDLER_EMAIL_DOMAIN", "foo.dev")
	t.Setenv("FORMHANDLER_EMAIL_SMTP_HOST", "smtp.foo.dev")
	t.Setenv("FORMHANDLER_EMAIL_SMTP_PORT", "2525")
	t.Setenv("FORMHANDLER_SLACK_CHANNEL", "#leads")
	t.Setenv("FORMHANDLER_SLACK_ENDPOINT", "https://hooks.slack.com/services/T/B/X")
	t.Setenv("FORMHANDLER_FORMS_PATH", "/etc/forms.yaml")
	t.Setenv("FORMHANDLER_OBSERVABILITY_LOGGING_LEVEL", "warn")
	t.Setenv("FORMHANDLER_OBSERVABILITY_LOGGING_FORMAT", "console")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.True(t, cfg.Primary.Test)
	assert.Equal(t, "9000", cfg.Server.Port)
	assert.Equal(t, []string{"https://foo.dev", "https://www.foo.dev"}, cfg.Server.Origins())
	assert.Equal(t, ProviderSMTP, cfg.Email.Provider)
	assert.Equal(t, 2525, cfg.Email.SMTPPort)
	assert.True(t, cfg.Email.SMTPTLS)
	assert.True(t, cfg.Email.Enabled())
	assert.True(t, cfg.Slack.Enabled())
	assert.Equal(t, "/etc/forms.yaml", cfg.Forms.Path)
	assert.Equal(t, "warn", cfg.Observability.GetLogLevel())
	assert.Equal(t, "console", cfg.Observability.Logging.Format)
}

func TestLoadConfig_Invalid(t *testing.T) {
	t.Run("missing redirect", func(t *testing.T) {
		t.Setenv("FORMHANDLER_PRIMARY_ENV", "development")
		t.Setenv("FORMHANDLER_SERVER_DEFAULT_REDIRECT", "")

		_, err := LoadConfig()
		require.Error(t, err)
	})

	t.Run("unknown provider", func(t *testing.T) {
		setBaseEnv(t)
		t.Setenv("FORMHANDLER_EMAIL_PROVIDER", "mailgun")

		_, err := LoadConfig()
		require.Error(t, err)
	})

	t.Run("bad log level", func(t *testing.T) {
		setBaseEnv(t)
		t.Setenv("FORMHANDLER_OBSERVABILITY_LOGGING_LEVEL", "verbose")

		_, err := LoadConfig()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "logging level")
	})
}

func TestGetLogLevel_DevelopmentDefault(t *testing.T) {
	c := DefaultObservabilityConfig()
	assert.Equal(t, "debug", c.GetLogLevel())
	assert.False(t, c.IsProduction())
}
