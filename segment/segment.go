package segment

import (
	"strings"
	"unicode/utf8"
)

// Segment represents one caption/display unit of text with its time interval.
type Segment struct {
	// Text is the displayed caption unit.
	Text string `json:"text"`
	// Start is the segment start time in seconds.
	Start float64 `json:"start"`
	// End is the segment end time in seconds.
	End float64 `json:"end"`
}

// Len returns the segment's text length in Unicode code points.
func (s Segment) Len() int {
	return utf8.RuneCountInString(s.Text)
}

// Duration returns the length of the segment's time interval in seconds.
func (s Segment) Duration() float64 {
	return s.End - s.Start
}

// TotalChars returns the summed text length of all segments in code points.
func TotalChars(segs []Segment) int {
	total := 0
	for _, s := range segs {
		total += s.Len()
	}
	return total
}

// Texts returns the segment texts in order.
func Texts(segs []Segment) []string {
	out := make([]string, len(segs))
	for i, s := range segs {
		out[i] = s.Text
	}
	return out
}

// Join concatenates all segment texts with newlines, the form used when a
// shadowing session is saved back as a note or voice transcript.
func Join(segs []Segment) string {
	return strings.Join(Texts(segs), "\n")
}

// Clone returns a deep copy of the segment list.
func Clone(segs []Segment) []Segment {
	if segs == nil {
		return nil
	}
	out := make([]Segment, len(segs))
	copy(out, segs)
	return out
}
