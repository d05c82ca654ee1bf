// Package handler is the first layer, the entry point for requests after
// the router (or the Lambda runtime).
//
// It translates transport-specific requests into event.Event values,
// calls the submission service, and writes the resulting event.Response
// back in the transport's own shape.
package handler
