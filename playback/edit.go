package playback

import "github.com/kbukum/shadowreader/segment"

// Segment edit operations. These mutate the in-memory segment list directly
// and leave timestamps stale on purpose: every edit must be followed by
// Reallocate before the intervals are proportionally correct again.
// Out-of-range indices are no-ops, never panics; edits come from trusted
// UI logic and a bad index means there is simply nothing to do.

// MergePrevious merges the segment at index into the one before it. The
// merged segment keeps the earlier segment's Start and the later segment's
// End. A single space joins the texts unless the boundary is a hard word
// split (the left side ends with a Latin letter and the right side begins
// with one), in which case they concatenate directly, restoring words that
// the fixed-width chunking cut in half.
func (s *Session) MergePrevious(index int) {
	if s.closed || index < 1 || index >= len(s.segments) {
		return
	}
	prev := s.segments[index-1]
	cur := s.segments[index]

	merged := segment.Segment{
		Text:  joinTexts(prev.Text, cur.Text),
		Start: prev.Start,
		End:   cur.End,
	}

	s.segments = append(s.segments[:index-1], append([]segment.Segment{merged}, s.segments[index+1:]...)...)
	if s.activeIndex >= index {
		s.activeIndex--
	}
}

// MergeNext merges the segment at index with the one after it.
func (s *Session) MergeNext(index int) {
	s.MergePrevious(index + 1)
}

// InsertAfter splits the segment at index's time interval in half and
// inserts an empty-text placeholder segment in the second half, for the
// user to type into.
func (s *Session) InsertAfter(index int) {
	if s.closed || index < 0 || index >= len(s.segments) {
		return
	}
	cur := &s.segments[index]
	mid := cur.Start + (cur.End-cur.Start)/2

	placeholder := segment.Segment{Text: "", Start: mid, End: cur.End}
	cur.End = mid

	tail := append([]segment.Segment{placeholder}, s.segments[index+1:]...)
	s.segments = append(s.segments[:index+1], tail...)
}

// SetText replaces the text of the segment at index. Timestamps are not
// recomputed; they are only correct again after the next Reallocate.
func (s *Session) SetText(index int, text string) {
	if s.closed || index < 0 || index >= len(s.segments) {
		return
	}
	s.segments[index].Text = text
}

// joinTexts concatenates two segment texts, gluing them without a separator
// when the boundary runs through the middle of a Latin word.
func joinTexts(left, right string) string {
	if left == "" {
		return right
	}
	if right == "" {
		return left
	}
	if isLatinLetter(lastRune(left)) && isLatinLetter(firstRune(right)) {
		return left + right
	}
	return left + " " + right
}

func isLatinLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func firstRune(s string) rune {
	for _, r := range s {
		return r
	}
	return 0
}

func lastRune(s string) rune {
	var last rune
	for _, r := range s {
		last = r
	}
	return last
}
