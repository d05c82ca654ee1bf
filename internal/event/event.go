// Package event defines the transport-neutral request and response shapes
// the submission pipeline works on.
//
// Both the Lambda adapter and the local echo server translate their native
// request types into an Event, and write a Response back out. Nothing below
// the handler layer knows which transport delivered the request.
package event

import "strings"

// Common header names read by the pipeline.
const (
	HeaderContentType   = "Content-Type"
	HeaderLocation      = "Location"
	HeaderOrigin        = "Origin"
	HeaderForwardedFor  = "X-Forwarded-For"
	HeaderUserAgent     = "User-Agent"
	HeaderAllowOrigin   = "Access-Control-Allow-Origin"
	HeaderRequestID     = "X-Request-ID"
	HeaderContentLength = "Content-Length"
)

// Headers is a flat header mapping as delivered by API Gateway.
//
// Lookups through Get are case-insensitive; API Gateway forwards whatever
// casing the client used ("content-type", "Content-Type", ...).
type Headers map[string]string

// Get returns the value for name, matching keys case-insensitively.
// An exact match wins over a case-folded one.
func (h Headers) Get(name string) string {
	if v, ok := h[name]; ok {
		return v
	}

	for k, v := range h {
		if strings.EqualFold(k, name) {
			return v
		}
	}

	return ""
}

// Event is an inbound HTTP-style request.
type Event struct {
	Headers         Headers
	Body            string
	IsBase64Encoded bool
	Path            string
}

// ContentType returns the request's Content-Type header, untouched.
func (e Event) ContentType() string {
	return e.Headers.Get(HeaderContentType)
}

// Response is the outbound response. It is always fully populated by the
// response builder; adapters copy it verbatim onto the wire.
type Response struct {
	StatusCode int
	Headers    map[string]string
	Body       string
}
