// Package form holds the static form configuration: which forms exist,
// where their notifications go and how each field is validated.
//
// Definitions are loaded once at process start (see Load*) and are never
// mutated afterwards; a single Registry is shared by every request.
package form

import (
	"fmt"
	"strings"
)

// Derivation selects how a field's value is computed server-side.
type Derivation int

const (
	DeriveNone Derivation = iota
	// DeriveClientIP takes the client address from the forwarded-for header.
	DeriveClientIP
	// DeriveUserAgent summarises the client's User-Agent header.
	DeriveUserAgent
)

func (d Derivation) String() string {
	switch d {
	case DeriveClientIP:
		return "client-ip"
	case DeriveUserAgent:
		return "user-agent"
	default:
		return "none"
	}
}

// ParseDerivation maps a configuration string to a Derivation.
//
// The legacy method names getIpAddress and getSystemDetails are accepted
// alongside the current names.
func ParseDerivation(s string) (Derivation, error) {
	switch strings.TrimSpace(s) {
	case "", "none":
		return DeriveNone, nil
	case "client-ip", "getIpAddress":
		return DeriveClientIP, nil
	case "user-agent", "user-agent-summary", "getSystemDetails":
		return DeriveUserAgent, nil
	default:
		return DeriveNone, fmt.Errorf("unknown derivation %q", s)
	}
}

// Format is an optional syntactic rule for non-empty values.
type Format string

const (
	FormatNone  Format = ""
	FormatEmail Format = "email"
	FormatURL   Format = "url"
)

// FieldSpec describes how one field is validated.
type FieldSpec struct {
	Label    string
	Required bool
	Honeypot bool
	Derive   Derivation
	Format   Format
}

// Field is a named FieldSpec.
type Field struct {
	Name string
	FieldSpec
}

// DisplayLabel returns the label, falling back to the field name.
func (f Field) DisplayLabel() string {
	if f.Label == "" {
		return f.Name
	}

	return f.Label
}

// Definition is one configured form.
type Definition struct {
	ID    string
	Label string

	// To and Bcc are the notification recipients.
	To  []string
	Bcc []string

	// From and Subject are templates containing {field} placeholders.
	From    string
	Subject string

	// Fields are kept in declaration order.
	Fields []Field
}

// Recipients returns To followed by Bcc as a new slice.
func (d *Definition) Recipients() []string {
	out := make([]string, 0, len(d.To)+len(d.Bcc))
	out = append(out, d.To...)

	return append(out, d.Bcc...)
}
