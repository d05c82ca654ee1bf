// Package email provides the email sending clients used for submission
// notifications.
//
// Two providers are supported: Resend (resend-go) over its HTTP API, and
// plain SMTP (go-mail). Both take a fully rendered Message; rendering of
// the submission body lives in emails.go and templates.go.
package email

import (
	"context"

	"github.com/pkg/errors"
	"github.com/resend/resend-go/v2"
	"github.com/rs/zerolog"
)

// Message is a rendered email ready to hand to a provider.
type Message struct {
	From    string
	To      []string
	Subject string

	// HTML and Text are the two alternative bodies. Either may be empty.
	HTML string
	Text string
}

// Client wraps the Resend client and a logger.
type Client struct {
	// client is the provider client used to send emails via API.
	client *resend.Client

	logger *zerolog.Logger
}

// NewClient creates an email Client.
//
// It initializes a Resend client with the given API key.
func NewClient(apiKey string, logger *zerolog.Logger) *Client {
	return &Client{
		client: resend.NewClient(apiKey),
		logger: logger,
	}
}

// NewClientWithResend wraps an already configured Resend client, e.g. one
// pointed at a different base URL.
func NewClientWithResend(client *resend.Client, logger *zerolog.Logger) *Client {
	return &Client{client: client, logger: logger}
}

// SendEmail sends msg through the Resend API.
func (c *Client) SendEmail(ctx context.Context, msg Message) error {
	if len(msg.To) == 0 {
		return errors.New("email has no recipients")
	}

	params := &resend.SendEmailRequest{
		From:    msg.From,
		To:      msg.To,
		Subject: msg.Subject,
		Html:    msg.HTML,
		Text:    msg.Text,
	}

	sent, err := c.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		return errors.Wrapf(err, "failed to send email %q via resend", msg.Subject)
	}

	c.logger.Debug().
		Str("provider", "resend").
		Str("email_id", sent.Id).
		Int("recipients", len(msg.To)).
		Msg("email sent")

	return nil
}
