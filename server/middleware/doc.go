// Package middleware provides the Gin middleware stack: panic recovery,
// request IDs, CORS, body-size limiting, and request logging.
package middleware
