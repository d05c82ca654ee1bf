// Package config manages environment variables.
//
// It reads variables from the process environment (and a `.env` file when
// one exists), loads them into structured Go types, and validates that
// required values are present so the handler fails fast on bad config.
//
// Responsibilities:
//   - Load environment variables (optionally from a `.env` file).
//   - Map env vars into a structured Go config (structs).
//   - Validate required values.
//   - Provide defaults for optional settings (port, provider, observability).
package config

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	// Side-effect import: loads a `.env` file into the process environment
	// before anything reads it.
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

const envPrefix = "FORMHANDLER_"

// Email providers.
const (
	ProviderResend = "resend"
	ProviderSMTP   = "smtp"
	ProviderNone   = "none"
)

const (
	defaultPort     = "8080"
	defaultSMTPPort = 587
	serviceName     = "form-handler"
)

// Config is the root configuration object for the application.
//
// Observability is a pointer because it is optional; defaults are filled
// in before the environment is applied.
type Config struct {
	Primary       Primary              `koanf:"primary" validate:"required"`
	Server        ServerConfig         `koanf:"server" validate:"required"`
	Email         EmailConfig          `koanf:"email"`
	Slack         SlackConfig          `koanf:"slack"`
	Forms         FormsConfig          `koanf:"forms"`
	Observability *ObservabilityConfig `koanf:"observability"`
}

// Primary holds top-level information about the runtime environment.
type Primary struct {
	Env string `koanf:"env" validate:"required"`

	// Test switches to the test form set.
	Test bool `koanf:"test"`
}

// ServerConfig groups settings for request handling.
type ServerConfig struct {
	// Port is only used by the local HTTP server.
	Port string `koanf:"port" validate:"required"`

	// DefaultRedirect is where empty posts are sent.
	DefaultRedirect string `koanf:"default_redirect" validate:"required,url"`

	// AllowedOrigins is a comma separated CORS allow-list.
	AllowedOrigins string `koanf:"allowed_origins"`
}

// Origins splits AllowedOrigins into its entries.
func (s ServerConfig) Origins() []string {
	var origins []string
	for _, o := range strings.Split(s.AllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}

	return origins
}

// EmailConfig selects and configures the email provider.
type EmailConfig struct {
	Provider string `koanf:"provider" validate:"oneof=resend smtp none"`

	// Domain is the sending domain, used for the noreply@ fallback sender.
	Domain string `koanf:"domain"`
	APIKey string `koanf:"api_key"`

	SMTPHost     string `koanf:"smtp_host"`
	SMTPPort     int    `koanf:"smtp_port" validate:"gte=0,lte=65535"`
	SMTPUsername string `koanf:"smtp_username"`
	SMTPPassword string `koanf:"smtp_password"`
	SMTPTLS      bool   `koanf:"smtp_tls"`
}

// Enabled reports whether the selected provider has the settings it needs.
func (e EmailConfig) Enabled() bool {
	switch e.Provider {
	case ProviderResend:
		return e.APIKey != ""
	case ProviderSMTP:
		return e.SMTPHost != ""
	default:
		return false
	}
}

// SlackConfig holds the incoming webhook settings.
type SlackConfig struct {
	Channel  string `koanf:"channel"`
	Endpoint string `koanf:"endpoint" validate:"omitempty,url"`
}

// Enabled reports whether chat notifications can be sent.
func (s SlackConfig) Enabled() bool {
	return s.Channel != "" && s.Endpoint != ""
}

// FormsConfig points at an external forms document.
type FormsConfig struct {
	// Path overrides the embedded form sets when set.
	Path string `koanf:"path"`
}

// nestedSections are env key prefixes that map to more than one level of
// nesting. Env var names cannot contain dots, so the mapping is explicit.
var nestedSections = []string{"observability_logging"}

// envKey maps FORMHANDLER_SERVER_DEFAULT_REDIRECT to server.default_redirect:
// the prefix is dropped, the rest lowercased, and the first underscore
// after the section name becomes the nesting delimiter.
func envKey(name string) string {
	key := strings.ToLower(strings.TrimPrefix(name, envPrefix))

	for _, section := range nestedSections {
		if rest, ok := strings.CutPrefix(key, section+"_"); ok {
			return strings.ReplaceAll(section, "_", ".") + "." + rest
		}
	}

	return strings.Replace(key, "_", ".", 1)
}

// LoadConfig loads configuration from environment variables, applies
// defaults and validates the result.
func LoadConfig() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(env.Provider(envPrefix, ".", envKey), nil); err != nil {
		return nil, errors.Wrap(err, "could not load env variables")
	}

	mainConfig := &Config{
		Server: ServerConfig{Port: defaultPort},
		Email: EmailConfig{
			Provider: ProviderResend,
			SMTPPort: defaultSMTPPort,
			SMTPTLS:  true,
		},
		Observability: DefaultObservabilityConfig(),
	}

	if err := k.Unmarshal("", mainConfig); err != nil {
		return nil, errors.Wrap(err, "could not unmarshal config")
	}

	mainConfig.Email.Provider = strings.ToLower(strings.TrimSpace(mainConfig.Email.Provider))

	validate := validator.New()
	if err := validate.Struct(mainConfig); err != nil {
		return nil, errors.Wrap(err, "config validation failed")
	}

	if mainConfig.Observability == nil {
		mainConfig.Observability = DefaultObservabilityConfig()
	}

	mainConfig.Observability.ServiceName = serviceName
	mainConfig.Observability.Environment = mainConfig.Primary.Env

	if err := mainConfig.Observability.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid observability config")
	}

	return mainConfig, nil
}
