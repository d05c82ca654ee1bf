// Package middleware stores the echo middleware of the local HTTP server.
//
// These intercept requests to handle cross-cutting concerns such as
// request IDs, request-scoped logging, CORS, and panic recovery. The
// Lambda entry point does not use them.
package middleware
