// Package component manages the lifecycle of the app's long-lived
// pieces (HTTP server, observability providers). Components start in
// registration order and stop in reverse, so dependencies register
// first.
package component
