// Package server runs the HTTP server: a Gin engine wrapped in h2c so
// HTTP/2 works without TLS on the local network, with graceful startup
// and shutdown. Route registration happens through the Gin engine; the
// standard middleware stack lives in server/middleware.
package server
