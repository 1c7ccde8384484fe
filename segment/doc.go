// Package segment implements caption segmentation and time alignment for
// shadow-reading playback.
//
// Split turns raw text into an ordered list of display segments using
// punctuation-based rules with a fixed-width fallback, and Allocate maps
// those segments onto a known audio duration proportionally to their
// character length. Both are pure functions; the playback package consumes
// their output to drive karaoke-style highlighting.
package segment
