// Package errors provides unified error handling for the shadowreader
// service: structured errors with machine-readable codes, HTTP status
// mapping, retryable detection, and an RFC 7807-style JSON response shape.
package errors
