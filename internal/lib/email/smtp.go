package email

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/wneessen/go-mail"
)

// SMTPConfig holds connection settings for an SMTP relay.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string

	// TLS selects STARTTLS (mandatory) when true, plain SMTP otherwise.
	TLS     bool
	Timeout time.Duration
}

// SMTPClient sends email through an SMTP relay using go-mail.
type SMTPClient struct {
	client *mail.Client
	logger *zerolog.Logger
}

// NewSMTPClient builds a go-mail client from cfg. No connection is made
// until the first send.
func NewSMTPClient(cfg SMTPConfig, logger *zerolog.Logger) (*SMTPClient, error) {
	if cfg.Host == "" {
		return nil, errors.New("smtp host is required")
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}

	opts := []mail.Option{
		mail.WithTimeout(timeout),
	}

	if cfg.Port != 0 {
		opts = append(opts, mail.WithPort(cfg.Port))
	}

	if cfg.TLS {
		opts = append(opts, mail.WithTLSPolicy(mail.TLSMandatory))
	} else {
		opts = append(opts, mail.WithTLSPolicy(mail.NoTLS))
	}

	if cfg.Username != "" && cfg.Password != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.Username),
			mail.WithPassword(cfg.Password),
		)
	}

	client, err := mail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create smtp client")
	}

	return &SMTPClient{client: client, logger: logger}, nil
}

// SendEmail delivers msg in a single SMTP session.
func (c *SMTPClient) SendEmail(ctx context.Context, msg Message) error {
	m, err := buildMsg(msg)
	if err != nil {
		return err
	}

	if err := c.client.DialAndSendWithContext(ctx, m); err != nil {
		return errors.Wrapf(err, "failed to send email %q via smtp", msg.Subject)
	}

	c.logger.Debug().
		Str("provider", "smtp").
		Int("recipients", len(msg.To)).
		Msg("email sent")

	return nil
}

// buildMsg converts a Message into a go-mail message with a plain-text
// body and an HTML alternative.
func buildMsg(msg Message) (*mail.Msg, error) {
	if len(msg.To) == 0 {
		return nil, errors.New("email has no recipients")
	}

	m := mail.NewMsg()

	if err := m.From(msg.From); err != nil {
		return nil, errors.Wrapf(err, "invalid sender %q", msg.From)
	}

	if err := m.To(msg.To...); err != nil {
		return nil, errors.Wrap(err, "invalid recipient")
	}

	m.Subject(msg.Subject)

	switch {
	case msg.Text != "" && msg.HTML != "":
		m.SetBodyString(mail.TypeTextPlain, msg.Text)
		m.AddAlternativeString(mail.TypeTextHTML, msg.HTML)
	case msg.HTML != "":
		m.SetBodyString(mail.TypeTextHTML, msg.HTML)
	default:
		m.SetBodyString(mail.TypeTextPlain, msg.Text)
	}

	return m, nil
}
