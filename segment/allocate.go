package segment

// Allocate assigns each segment a [Start, End) interval proportional to its
// character length within totalDuration. The input is not mutated; a new
// list is returned with timestamps populated.
//
// Degenerate inputs short-circuit: a non-positive duration, an empty list,
// or a list whose texts are all empty returns the input unchanged with
// all-zero timestamps. Allocation is always a whole-list recomputation:
// after any text edit the caller re-runs Allocate over the full list with
// the same duration, never patching a single interval.
//
// The last segment's End is clamped to exactly totalDuration so cumulative
// floating-point drift cannot leave the tail uncovered.
func Allocate(segs []Segment, totalDuration float64) []Segment {
	if totalDuration <= 0 || len(segs) == 0 {
		return segs
	}

	totalChars := TotalChars(segs)
	if totalChars == 0 {
		// All texts empty; proportional division would be 0/0.
		return segs
	}

	out := make([]Segment, len(segs))
	currentTime := 0.0
	for i, s := range segs {
		duration := float64(s.Len()) / float64(totalChars) * totalDuration
		s.Start = currentTime
		s.End = currentTime + duration
		currentTime += duration
		out[i] = s
	}
	out[len(out)-1].End = totalDuration

	return out
}
