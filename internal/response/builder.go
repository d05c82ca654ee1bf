package response

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/deppfellow/form-handler/internal/errs"
	"github.com/deppfellow/form-handler/internal/event"
)

// Response content types.
const (
	ContentTypeJSON = "application/json"
	ContentTypeHTML = "text/html"

	formURLEncoded = "application/x-www-form-urlencoded"
)

// Builder renders Outcomes. It holds only configuration and is safe for
// concurrent use.
type Builder struct {
	defaultRedirect string
	allowedOrigins  map[string]struct{}
}

// NewBuilder creates a Builder that sends empty posts to defaultRedirect
// and echoes back any request Origin listed in allowedOrigins.
func NewBuilder(defaultRedirect string, allowedOrigins []string) *Builder {
	origins := make(map[string]struct{}, len(allowedOrigins))
	for _, o := range allowedOrigins {
		if o = strings.TrimSpace(o); o != "" {
			origins[o] = struct{}{}
		}
	}

	return &Builder{
		defaultRedirect: defaultRedirect,
		allowedOrigins:  origins,
	}
}

// wantsHTML reports whether the request was a plain browser form post.
// Only the bare media type qualifies; parameters disable HTML output.
func wantsHTML(contentType string) bool {
	return strings.EqualFold(strings.TrimSpace(contentType), formURLEncoded)
}

// Build produces the response for o.
func (b *Builder) Build(o Outcome) event.Response {
	state := o.State()

	res := event.Response{
		Headers: make(map[string]string),
	}

	switch state {
	case EmptyPost:
		res.StatusCode = http.StatusFound
		res.Headers[event.HeaderLocation] = b.defaultRedirect
	case BadRequest:
		res.StatusCode = http.StatusBadRequest
	case ExplicitRedirect:
		res.StatusCode = http.StatusFound
		res.Headers[event.HeaderLocation] = o.Redirect
	default:
		res.StatusCode = http.StatusOK
	}

	if o.Origin != "" {
		if _, ok := b.allowedOrigins[o.Origin]; ok {
			res.Headers[event.HeaderAllowOrigin] = o.Origin
		}
	}

	success := res.StatusCode == http.StatusOK || res.StatusCode == http.StatusFound
	reasons := o.Reasons()

	if wantsHTML(o.ContentType) {
		res.Headers[event.HeaderContentType] = ContentTypeHTML
		res.Body = renderHTML(success, reasons, o.Errors)

		return res
	}

	res.Headers[event.HeaderContentType] = ContentTypeJSON
	res.Body = renderJSON(success, reasons, o.Errors)

	return res
}

type jsonBody struct {
	Success bool              `json:"success"`
	Reason  []string          `json:"reason,omitempty"`
	Errors  *errs.FieldErrors `json:"errors,omitempty"`
}

func renderJSON(success bool, reasons []string, fieldErrors *errs.FieldErrors) string {
	body := jsonBody{Success: success, Reason: reasons}
	if !fieldErrors.Empty() {
		body.Errors = fieldErrors
	}

	out, err := json.Marshal(body)
	if err != nil {
		// Only reachable through a broken FieldErrors encoder.
		return `{"success":false}`
	}

	return string(out)
}
