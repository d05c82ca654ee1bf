// Package slack posts chat notifications to a Slack incoming webhook.
package slack

import (
	"context"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/slack-go/slack"
)

const defaultTimeout = 10 * time.Second

// Client sends messages to one incoming webhook URL.
type Client struct {
	endpoint   string
	httpClient *http.Client
	logger     *zerolog.Logger
}

// NewClient creates a webhook client for endpoint. A nil httpClient gets a
// client with a short timeout.
func NewClient(endpoint string, httpClient *http.Client, logger *zerolog.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}

	return &Client{
		endpoint:   endpoint,
		httpClient: httpClient,
		logger:     logger,
	}
}

// SendChatNotification posts text to channel.
func (c *Client) SendChatNotification(ctx context.Context, channel, text string) error {
	msg := &slack.WebhookMessage{
		Channel: channel,
		Text:    text,
	}

	if err := slack.PostWebhookCustomHTTPContext(ctx, c.endpoint, c.httpClient, msg); err != nil {
		return errors.Wrapf(err, "failed to post slack webhook to %s", channel)
	}

	c.logger.Debug().
		Str("channel", channel).
		Msg("slack notification sent")

	return nil
}
