package email

import (
	"embed"
	"html/template"
	"path"
	"strings"
	"sync"

	"github.com/pkg/errors"
)

// Template is a string-based enum naming email templates.
type Template string

const (
	// TemplateSubmission corresponds to templates/submission.html
	TemplateSubmission Template = "submission"
)

//go:embed templates/*.html
var templateFS embed.FS

var (
	templatesOnce sync.Once
	templates     *template.Template
	templatesErr  error
)

var lineBreaks = strings.NewReplacer("\r\n", "<br>", "\n\r", "<br>", "\r", "<br>", "\n", "<br>")

// nl2br escapes value, so markup a visitor typed shows up as text, and
// turns its line breaks into <br> elements.
func nl2br(value string) template.HTML {
	return template.HTML(lineBreaks.Replace(template.HTMLEscapeString(value)))
}

func loadTemplates() (*template.Template, error) {
	templatesOnce.Do(func() {
		templates, templatesErr = template.New("").
			Funcs(template.FuncMap{"nl2br": nl2br}).
			ParseFS(templateFS, "templates/*.html")
	})

	return templates, templatesErr
}

func renderTemplate(name Template, data any) (string, error) {
	tmpl, err := loadTemplates()
	if err != nil {
		return "", errors.Wrap(err, "failed to parse email templates")
	}

	var body strings.Builder
	if err := tmpl.ExecuteTemplate(&body, path.Base(string(name))+".html", data); err != nil {
		return "", errors.Wrapf(err, "failed to execute email template %s", name)
	}

	return body.String(), nil
}
