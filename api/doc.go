// Package api exposes the HTTP surface: speech synthesis behind the
// audio cache, translation, the note and voice library, sentence-voice
// associations, bulk migration, and a segmentation preview used by
// clients to show timed lines before any audio exists.
package api
