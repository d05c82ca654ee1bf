package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/deppfellow/form-handler/internal/errs"
	"github.com/deppfellow/form-handler/internal/event"
	"github.com/deppfellow/form-handler/internal/form"
	"github.com/deppfellow/form-handler/internal/notify"
	"github.com/deppfellow/form-handler/internal/payload"
	"github.com/deppfellow/form-handler/internal/response"
	"github.com/deppfellow/form-handler/internal/validation"
)

// Notifier dispatches the notifications of a valid submission.
type Notifier interface {
	Dispatch(ctx context.Context, def *form.Definition, fields []validation.Field) notify.Result
}

// SubmissionService processes form submissions. It is safe for concurrent
// use; all per-request state lives on the stack of Process.
type SubmissionService struct {
	forms     *form.Registry
	validator *validation.Validator
	notifier  Notifier
	builder   *response.Builder
	logger    *zerolog.Logger

	// dumpPayload logs decoded field names at debug level.
	dumpPayload bool
}

// NewSubmissionService wires the pipeline stages.
func NewSubmissionService(
	forms *form.Registry,
	validator *validation.Validator,
	notifier Notifier,
	builder *response.Builder,
	logger *zerolog.Logger,
	dumpPayload bool,
) *SubmissionService {
	return &SubmissionService{
		forms:       forms,
		validator:   validator,
		notifier:    notifier,
		builder:     builder,
		logger:      logger,
		dumpPayload: dumpPayload,
	}
}

// Process handles one request end to end. It never fails: every problem
// is expressed in the returned response.
func (s *SubmissionService) Process(ctx context.Context, ev event.Event) (res event.Response) {
	start := time.Now()
	logger := s.requestLogger(ctx).With().Str("path", ev.Path).Logger()

	defer func() {
		if r := recover(); r != nil {
			logger.Error().
				Str("panic", fmt.Sprint(r)).
				Msg("submission pipeline panicked")

			// Reported as an unsent submission.
			res = s.builder.Build(response.Outcome{
				FormState:   form.Resolved,
				HasPayload:  true,
				ContentType: ev.ContentType(),
				Origin:      ev.Headers.Get(event.HeaderOrigin),
			})
		}
	}()

	source := payload.NewSource(ev)
	p := source.Payload()

	if err := source.Err(); err != nil {
		logger.Warn().Err(err).Msg("request body could not be decoded")
	}

	if s.dumpPayload && p.Kind() == payload.KindFields {
		logger.Debug().Int("field_count", p.Len()).Msg("decoded payload")
	}

	resolution := s.forms.Resolve(p, ev.Path)
	logger = logger.With().
		Str("form_id", resolution.ID).
		Str("form_state", resolution.State.String()).
		Logger()

	outcome := response.Outcome{
		FormState:   resolution.State,
		HasPayload:  p.Present(),
		Errors:      errs.NewFieldErrors(),
		ContentType: ev.ContentType(),
		Origin:      ev.Headers.Get(event.HeaderOrigin),
	}
	outcome.Redirect, outcome.HasRedirect = p.Redirect()

	if resolution.State == form.Resolved {
		result := s.validator.Validate(p, resolution.Form, ev.Headers)
		outcome.Errors = result.Errors

		if result.Valid() {
			dispatched := s.notifier.Dispatch(ctx, resolution.Form, result.Fields)
			outcome.Sent = dispatched.Sent
		} else {
			logger.Info().
				Strs("invalid_fields", result.Errors.Fields()).
				Int("error_count", result.Errors.Count()).
				Msg("submission failed validation")
		}
	}

	res = s.builder.Build(outcome)

	logger.Info().
		Str("state", outcome.State().String()).
		Int("status", res.StatusCode).
		Dur("duration", time.Since(start)).
		Msg("submission processed")

	return res
}

// requestLogger prefers the request-scoped logger a transport stored in
// ctx, so its request fields end up on pipeline log lines.
func (s *SubmissionService) requestLogger(ctx context.Context) *zerolog.Logger {
	if l := zerolog.Ctx(ctx); l.GetLevel() != zerolog.Disabled {
		return l
	}

	return s.logger
}
