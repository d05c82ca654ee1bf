package email

import (
	"fmt"
	"strings"

	"github.com/deppfellow/form-handler/internal/lib/utils"
)

// Entry is one labelled value shown in a submission email.
type Entry struct {
	Label string
	Value string
}

// Submission is the data rendered into a notification email.
type Submission struct {
	// FormLabel is the human name of the form, e.g. "Contact Form".
	FormLabel string
	Entries   []Entry
}

// Title returns the heading used in both bodies.
func (s Submission) Title() string {
	return fmt.Sprintf("New %s Submission", s.FormLabel)
}

// RenderSubmission produces the HTML and plain-text bodies for s.
func RenderSubmission(s Submission) (html, text string, err error) {
	doc, err := renderTemplate(TemplateSubmission, struct {
		Title   string
		Entries []Entry
	}{
		Title:   s.Title(),
		Entries: s.Entries,
	})
	if err != nil {
		return "", "", err
	}

	html, err = utils.MinifyHTML(doc)
	if err != nil {
		return "", "", fmt.Errorf("failed to minify email body: %w", err)
	}

	return html, RenderText(s), nil
}

// RenderText renders the plain-text alternative: the title followed by one
// "Label: value" line per entry.
func RenderText(s Submission) string {
	var b strings.Builder
	b.WriteString(s.Title())
	b.WriteString("\n\n")

	for _, e := range s.Entries {
		fmt.Fprintf(&b, "%s: %s\n", e.Label, e.Value)
	}

	return b.String()
}
