// Package validation checks a decoded submission against a form
// definition.
//
// It enforces the per-field rules declared in the form configuration
// (required, honeypot, format), fills in server-derived values such as the
// client address, and produces the ordered list of fields that end up in
// the notification. Messages are written for end users and are returned
// to the client as-is.
package validation

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/deppfellow/form-handler/internal/errs"
	"github.com/deppfellow/form-handler/internal/event"
	"github.com/deppfellow/form-handler/internal/form"
	"github.com/deppfellow/form-handler/internal/payload"
)

// Field is one accepted, non-empty value ready for rendering.
type Field struct {
	Name  string
	Label string
	Value string
}

// Result is the outcome of validating one submission.
//
// Fields keeps form declaration order. Errors is never nil.
type Result struct {
	Fields []Field
	Errors *errs.FieldErrors
}

// Valid reports whether no field failed.
func (r Result) Valid() bool {
	return r.Errors.Empty()
}

// Validator applies form field rules. It is stateless apart from the
// underlying validator instance and safe for concurrent use.
type Validator struct {
	validate *validator.Validate
}

// New creates a Validator.
func New() *Validator {
	return &Validator{validate: validator.New()}
}

// Validate runs every field rule of def over p.
//
// Rules run per field in declaration order: the raw value is trimmed, the
// required and honeypot checks run independently, a derivation (if any)
// replaces the value, the format rule runs on non-empty values and the
// value is kept when it is non-empty.
func (v *Validator) Validate(p payload.Payload, def *form.Definition, headers event.Headers) Result {
	res := Result{Errors: errs.NewFieldErrors()}

	for _, field := range def.Fields {
		label := field.DisplayLabel()

		raw, _ := p.Lookup(field.Name)
		value := strings.TrimSpace(raw.Text)

		if field.Required && value == "" {
			res.Errors.Add(field.Name, fmt.Sprintf("%s is required.", label))
		}

		if field.Honeypot && value != "" {
			res.Errors.Add(field.Name, fmt.Sprintf("%s must be empty.", label))
		}

		switch field.Derive {
		case form.DeriveClientIP:
			value = ClientIP(headers)
		case form.DeriveUserAgent:
			value = SystemSummary(headers.Get(event.HeaderUserAgent))
		}

		if value != "" {
			if msg := v.checkFormat(field.Format, label, value); msg != "" {
				res.Errors.Add(field.Name, msg)
			}

			res.Fields = append(res.Fields, Field{
				Name:  field.Name,
				Label: label,
				Value: value,
			})
		}
	}

	return res
}

func (v *Validator) checkFormat(format form.Format, label, value string) string {
	switch format {
	case form.FormatEmail:
		if err := v.validate.Var(value, "email"); err != nil {
			return fmt.Sprintf("%s must be a valid email address.", label)
		}
	case form.FormatURL:
		if err := v.validate.Var(value, "url"); err != nil {
			return fmt.Sprintf("%s must be a valid URL.", label)
		}
	}

	return ""
}
