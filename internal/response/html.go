package response

import (
	"html/template"
	"strings"

	"github.com/deppfellow/form-handler/internal/errs"
	"github.com/deppfellow/form-handler/internal/lib/utils"
)

// Page headings.
const (
	HeadingSuccess  = "Form Submitted!"
	HeadingProblem  = "Uh oh! There was a problem with the form."
	HeadingProblems = "Uh oh! There were problems with the form."
)

var pageTemplate = template.Must(template.New("page").Parse(`<!doctype html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <meta name="robots" content="noindex,nofollow">
  <title>{{ .Heading }}</title>
  <style>
    * { box-sizing: border-box; }
    body { margin: 0; background: #f4f6f7; color: #333333; font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Helvetica, Arial, sans-serif; font-size: 16px; line-height: 1.5; }
    .wrapper { display: flex; align-items: center; justify-content: center; min-height: 100vh; padding: 20px; }
    .little-box { width: 100%; max-width: 480px; padding: 40px; background: #ffffff; border-radius: 4px; box-shadow: 0 1px 3px rgba(0, 0, 0, 0.1); }
    h1 { margin: 0 0 20px 0; font-size: 24px; font-weight: normal; }
    ul { margin: 0 0 20px 0; padding-left: 20px; color: #b94a48; }
    a { color: #61899b; }
  </style>
</head>
<body>
  <div class="wrapper">
    <div class="little-box">
      <h1>{{ .Heading }}</h1>
      {{- if .Messages }}
      <ul>
        {{- range .Messages }}
        <li>{{ . }}</li>
        {{- end }}
      </ul>
      {{- end }}
      {{- if .Back }}
      <p><a href="javascript:history.back()">&larr; go back</a></p>
      {{- end }}
    </div>
  </div>
</body>
</html>
`))

type page struct {
	Heading  string
	Messages []string
	Back     bool
}

// renderHTML builds the minified result page. On failure it lists the
// field messages, or the reasons when no field failed.
func renderHTML(success bool, reasons []string, fieldErrors *errs.FieldErrors) string {
	p := page{Heading: HeadingSuccess}

	if !success {
		p.Back = true
		p.Messages = fieldErrors.Messages()
		if len(p.Messages) == 0 {
			p.Messages = reasons
		}

		if len(p.Messages) == 1 {
			p.Heading = HeadingProblem
		} else {
			p.Heading = HeadingProblems
		}
	}

	var buf strings.Builder
	if err := pageTemplate.Execute(&buf, p); err != nil {
		return "<h1>" + template.HTMLEscapeString(p.Heading) + "</h1>"
	}

	out, err := utils.MinifyHTML(buf.String())
	if err != nil {
		return buf.String()
	}

	return out
}
