package validation

import (
	"strings"

	"github.com/mssola/useragent"

	"github.com/deppfellow/form-handler/internal/event"
)

// ClientIP returns the first address of the X-Forwarded-For chain, which
// is the client as seen by the outermost proxy.
func ClientIP(headers event.Headers) string {
	chain := headers.Get(event.HeaderForwardedFor)
	first, _, _ := strings.Cut(chain, ",")

	return strings.TrimSpace(first)
}

const unknownAgent = "Other"

// SystemSummary condenses a User-Agent header to
// "Browser version / OS version", e.g. "Chrome 120.0.0.0 / Mac OS X 10.15.7".
// An empty header yields "".
func SystemSummary(header string) string {
	header = strings.TrimSpace(header)
	if header == "" {
		return ""
	}

	ua := useragent.New(header)

	browser, version := ua.Browser()
	if browser == "" {
		browser = unknownAgent
	}

	os := ua.OSInfo()
	osName := os.Name
	if osName == "" {
		osName = unknownAgent
	}

	return joinNonEmpty(browser, version) + " / " + joinNonEmpty(osName, os.Version)
}

func joinNonEmpty(parts ...string) string {
	var out []string
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}

	return strings.Join(out, " ")
}
