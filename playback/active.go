package playback

import "github.com/kbukum/shadowreader/segment"

// ActiveIndex returns the index of the segment whose [Start, End) interval
// contains t. Intervals are half-open except at the very end of the list:
// when t reaches or passes the last segment's End the last index is still
// returned, so playback never ends with no active segment.
//
// Negative t maps to the first segment. Zero-width intervals (empty-text
// segments) can never match, so the index always advances past them.
// Returns -1 only for an empty list.
func ActiveIndex(segs []segment.Segment, t float64) int {
	n := len(segs)
	if n == 0 {
		return -1
	}
	if t < 0 {
		return 0
	}
	for i, s := range segs {
		if t < s.End {
			return i
		}
	}
	return n - 1
}
