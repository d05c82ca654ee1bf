package notify

import (
	"context"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/deppfellow/form-handler/internal/errs"
	"github.com/deppfellow/form-handler/internal/form"
	"github.com/deppfellow/form-handler/internal/validation"
)

// Result reports what happened during one dispatch.
type Result struct {
	// Sent is true once every configured channel was attempted,
	// regardless of the provider outcome.
	Sent bool

	// Email and Chat hold the provider failure of each channel, if any.
	Email error
	Chat  error
}

// Dispatcher sends submission notifications. Either channel may be nil,
// in which case it is skipped.
type Dispatcher struct {
	mailer  Mailer
	chat    ChatNotifier
	channel string
	domain  string
	logger  *zerolog.Logger
}

// NewDispatcher wires the notification channels. channel is the chat
// channel name and domain the sending domain used for the fallback
// sender address.
func NewDispatcher(mailer Mailer, chat ChatNotifier, channel, domain string, logger *zerolog.Logger) *Dispatcher {
	if chat != nil && channel == "" {
		chat = nil
	}

	return &Dispatcher{
		mailer:  mailer,
		chat:    chat,
		channel: channel,
		domain:  domain,
		logger:  logger,
	}
}

// Channels lists the configured channel names.
func (d *Dispatcher) Channels() []string {
	channels := []string{}
	if d.mailer != nil {
		channels = append(channels, errs.ChannelEmail)
	}

	if d.chat != nil {
		channels = append(channels, errs.ChannelChat)
	}

	return channels
}

// Dispatch sends the email and chat notifications concurrently and waits
// for both.
func (d *Dispatcher) Dispatch(ctx context.Context, def *form.Definition, fields []validation.Field) Result {
	var (
		g   errgroup.Group
		res Result
	)

	if d.mailer != nil {
		g.Go(func() error {
			res.Email = d.sendEmail(ctx, def, fields)
			return nil
		})
	}

	if d.chat != nil {
		g.Go(func() error {
			res.Chat = d.sendChat(ctx, def, fields)
			return nil
		})
	}

	_ = g.Wait()
	res.Sent = true

	return res
}

func (d *Dispatcher) sendEmail(ctx context.Context, def *form.Definition, fields []validation.Field) error {
	msg, err := BuildEmail(def, fields, d.domain)
	if err == nil {
		err = d.mailer.SendEmail(ctx, msg)
	}

	if err != nil {
		err = &errs.DispatchError{Channel: errs.ChannelEmail, Err: err}
		d.logger.Error().Err(err).Str("form_id", def.ID).Msg("email notification failed")

		return err
	}

	d.logger.Info().
		Str("form_id", def.ID).
		Int("recipients", len(msg.To)).
		Msg("email notification sent")

	return nil
}

func (d *Dispatcher) sendChat(ctx context.Context, def *form.Definition, fields []validation.Field) error {
	if err := d.chat.SendChatNotification(ctx, d.channel, ChatText(def, fields)); err != nil {
		err = &errs.DispatchError{Channel: errs.ChannelChat, Err: err}
		d.logger.Error().Err(err).Str("form_id", def.ID).Msg("chat notification failed")

		return err
	}

	d.logger.Info().
		Str("form_id", def.ID).
		Str("channel", d.channel).
		Msg("chat notification sent")

	return nil
}
