package email_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deppfellow/form-handler/internal/lib/email"
)

func TestRenderSubmission(t *testing.T) {
	html, text, err := email.RenderSubmission(email.Submission{
		FormLabel: "Contact Form",
		Entries: []email.Entry{
			{Label: "Name", Value: "Ada"},
			{Label: "Message", Value: "line one\nline <b>two</b> & more"},
		},
	})
	require.NoError(t, err)

	assert.Contains(t, html, "New Contact Form Submission")
	assert.Contains(t, html, ">Name</b>")
	assert.Contains(t, html, "line one<br>line &lt;b")
	assert.NotContains(t, html, "<b>two</b>", "typed markup is escaped, never rendered")
	assert.NotContains(t, html, "\n")

	assert.Equal(t, "New Contact Form Submission\n\nName: Ada\nMessage: line one\nline <b>two</b> & more\n", text)
}

func TestRenderSubmission_KeepsEntryOrder(t *testing.T) {
	html, _, err := email.RenderSubmission(email.Submission{
		FormLabel: "Project Brief",
		Entries: []email.Entry{
			{Label: "Zeta", Value: "1"},
			{Label: "Alpha", Value: "2"},
		},
	})
	require.NoError(t, err)

	assert.Less(t, strings.Index(html, "Zeta"), strings.Index(html, "Alpha"))
}
