// Package logger wraps zerolog with the small surface shadowreader needs:
// a configured global logger, component tagging, and field helpers for the
// domain identifiers that recur across the codebase (session, note, voice).
package logger
