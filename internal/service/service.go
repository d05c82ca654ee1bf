// Package service contains the business logic.
//
// It sits between the transport handlers and the domain packages. The
// submission service runs one request through the full pipeline: decode
// the body, resolve the form, validate it, notify, and build the response.
package service
