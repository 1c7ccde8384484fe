// Package observability wires OpenTelemetry tracing and metrics over
// OTLP/HTTP. It is disabled by default: a personal practice app rarely
// needs a collector, but when one is around (Endpoint set, Enabled true)
// the server traces its requests and the synthesis and translation
// providers record spans and counters.
package observability
