package notify

import (
	"net/mail"
	"strings"

	"github.com/deppfellow/form-handler/internal/form"
	"github.com/deppfellow/form-handler/internal/lib/email"
	"github.com/deppfellow/form-handler/internal/payload"
	"github.com/deppfellow/form-handler/internal/validation"
)

// Render replaces every {name} token in tmpl with the value of the
// validated field called name. Tokens without a matching field are left
// untouched.
func Render(tmpl string, fields []validation.Field) string {
	if len(fields) == 0 || !strings.Contains(tmpl, "{") {
		return tmpl
	}

	pairs := make([]string, 0, len(fields)*2)
	for _, f := range fields {
		pairs = append(pairs, "{"+f.Name+"}", f.Value)
	}

	return strings.NewReplacer(pairs...).Replace(tmpl)
}

// isRenderable reports whether a field belongs in the email body. The
// reserved routing keys never do.
func isRenderable(name string) bool {
	return name != payload.KeyForm && name != payload.KeyRedirect
}

// BuildEmail renders the notification email for a submission.
//
// The sender falls back to noreply@domain when the rendered template is
// not a usable address.
func BuildEmail(def *form.Definition, fields []validation.Field, domain string) (email.Message, error) {
	entries := make([]email.Entry, 0, len(fields))
	for _, f := range fields {
		if isRenderable(f.Name) {
			entries = append(entries, email.Entry{Label: f.Label, Value: f.Value})
		}
	}

	html, text, err := email.RenderSubmission(email.Submission{
		FormLabel: def.Label,
		Entries:   entries,
	})
	if err != nil {
		return email.Message{}, err
	}

	return email.Message{
		From:    sender(Render(def.From, fields), domain),
		To:      def.Recipients(),
		Subject: Render(def.Subject, fields),
		HTML:    html,
		Text:    text,
	}, nil
}

func sender(from, domain string) string {
	from = strings.TrimSpace(from)
	if _, err := mail.ParseAddress(from); err == nil {
		return from
	}

	if domain == "" {
		return from
	}

	return "noreply@" + domain
}

var slackEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// ChatText renders the chat notification: "New " followed by the rendered
// subject, with Slack control characters escaped.
func ChatText(def *form.Definition, fields []validation.Field) string {
	return slackEscaper.Replace("New " + Render(def.Subject, fields))
}
