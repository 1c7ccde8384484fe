// Package store persists the learner's library as a single JSON file:
// notes, recorded voices, sentence-to-voice associations, and app
// settings. Writes are atomic (temp file plus rename) and the whole
// store is guarded by one mutex, which is plenty for a single-user app.
package store
