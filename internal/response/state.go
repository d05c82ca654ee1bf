// Package response turns the outcome of a submission into the HTTP
// response sent back to the client.
//
// The status code follows a fixed precedence (see State), and the body is
// either a JSON document or a small HTML page depending on how the form
// was posted.
package response

import (
	"github.com/deppfellow/form-handler/internal/errs"
	"github.com/deppfellow/form-handler/internal/form"
)

// State is the response category of a submission.
type State int

const (
	// EmptyPost: no form id and no payload. Sent to the default redirect.
	EmptyPost State = iota
	// BadRequest: any failure category.
	BadRequest
	// ExplicitRedirect: the payload asked to be redirected.
	ExplicitRedirect
	// Success: processed, no redirect requested.
	Success
)

func (s State) String() string {
	switch s {
	case EmptyPost:
		return "empty_post"
	case BadRequest:
		return "bad_request"
	case ExplicitRedirect:
		return "explicit_redirect"
	default:
		return "success"
	}
}

// Failure reasons, in the order they are reported.
const (
	ReasonFormErrors    = "Form has errors."
	ReasonFailedSend    = "Failed to send."
	ReasonInvalidFormID = "Invalid form ID."
	ReasonMissingFormID = "Missing form ID."
)

// Outcome is everything the pipeline learned about one request.
type Outcome struct {
	FormState  form.ResolutionState
	HasPayload bool
	Errors     *errs.FieldErrors
	Sent       bool

	// Redirect is the payload's redirect target, when it sent one.
	Redirect    string
	HasRedirect bool

	// ContentType and Origin are copied from the request headers.
	ContentType string
	Origin      string
}

func (o Outcome) hasErrors() bool {
	return !o.Errors.Empty()
}

func (o Outcome) invalidID() bool {
	return o.FormState == form.InvalidID
}

func (o Outcome) missingID() bool {
	return o.FormState == form.NoID && o.HasPayload
}

// State derives the response category. The first matching rule wins.
func (o Outcome) State() State {
	switch {
	case o.FormState == form.NoID && !o.HasPayload:
		return EmptyPost
	case o.hasErrors() || !o.Sent || o.invalidID() || o.missingID():
		return BadRequest
	case o.HasRedirect:
		return ExplicitRedirect
	default:
		return Success
	}
}

// Reasons lists every failure category that applies, in reporting order.
func (o Outcome) Reasons() []string {
	var reasons []string

	if o.hasErrors() {
		reasons = append(reasons, ReasonFormErrors)
	}

	if !o.Sent {
		reasons = append(reasons, ReasonFailedSend)
	}

	if o.invalidID() {
		reasons = append(reasons, ReasonInvalidFormID)
	}

	if o.missingID() {
		reasons = append(reasons, ReasonMissingFormID)
	}

	return reasons
}
