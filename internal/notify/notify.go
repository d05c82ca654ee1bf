// Package notify fans a validated submission out to the configured
// notification channels: one email and one chat message.
//
// Delivery is best effort. Provider failures are logged and never change
// the response the client receives; what matters to the caller is only
// that dispatch was attempted.
package notify

import (
	"context"

	"github.com/deppfellow/form-handler/internal/lib/email"
)

// Mailer delivers a rendered email.
type Mailer interface {
	SendEmail(ctx context.Context, msg email.Message) error
}

// ChatNotifier posts a short text message to a chat channel.
type ChatNotifier interface {
	SendChatNotification(ctx context.Context, channel, text string) error
}
