package segment

import (
	"regexp"
	"strings"
)

// Splitting thresholds, in Unicode code points.
const (
	// maxSentenceLen is the sentence length above which clause splitting kicks in.
	maxSentenceLen = 50
	// maxLineLen is the hard upper bound on any output line.
	maxLineLen = 80
	// chunkLen is the fixed chunk width used when a line must be force-split.
	chunkLen = 40
)

var (
	// sentenceEnd matches a sentence terminator (CJK full-width or ASCII)
	// plus any whitespace that follows it.
	sentenceEnd = regexp.MustCompile(`([。！？.!?])\s*`)
	// clauseSep matches a clause separator (CJK or ASCII comma/semicolon)
	// plus any whitespace that follows it.
	clauseSep = regexp.MustCompile(`([，；,;])\s*`)
)

// Split breaks raw text into an ordered list of untimed segments.
//
// The rules, applied in order:
//  1. Sentence split: a line break is inserted after every sentence
//     terminator and the text is split on line breaks.
//  2. Clause split: sentences longer than 50 characters are further split
//     after every comma/semicolon.
//  3. Hard re-chunk: if any resulting line still exceeds 80 characters (or
//     the line list came out empty), lines over the bound are force-split
//     into 40-character chunks, preserving order.
//
// Empty pieces are dropped at every stage. Split is deterministic and never
// fails; empty input yields an empty list. All returned segments have zero
// timestamps until Allocate runs.
func Split(raw string) []Segment {
	clean := strings.TrimSpace(raw)

	sentences := breakOn(sentenceEnd, clean)

	var lines []string
	for _, sentence := range sentences {
		if runeLen(sentence) <= maxSentenceLen {
			lines = append(lines, sentence)
			continue
		}
		lines = append(lines, breakOn(clauseSep, sentence)...)
	}

	if needsRechunk(lines) {
		var final []string
		for _, line := range lines {
			if runeLen(line) <= maxLineLen {
				final = append(final, line)
				continue
			}
			final = append(final, chunk(line, chunkLen)...)
		}
		lines = final
	}

	var segs []Segment
	for _, line := range lines {
		if line == "" {
			continue
		}
		segs = append(segs, Segment{Text: line})
	}
	return segs
}

// breakOn inserts a newline after every match of sep in text, splits on
// newlines, trims each piece, and drops empties.
func breakOn(sep *regexp.Regexp, text string) []string {
	marked := sep.ReplaceAllString(text, "$1\n")

	var out []string
	for _, piece := range strings.Split(marked, "\n") {
		piece = strings.TrimSpace(piece)
		if piece != "" {
			out = append(out, piece)
		}
	}
	return out
}

// needsRechunk reports whether the hard re-chunking pass must run: the line
// list is empty or some line exceeds the hard length bound.
func needsRechunk(lines []string) bool {
	if len(lines) == 0 {
		return true
	}
	for _, line := range lines {
		if runeLen(line) > maxLineLen {
			return true
		}
	}
	return false
}

// chunk splits s into fixed-width pieces of at most width code points; the
// last piece may be shorter.
func chunk(s string, width int) []string {
	runes := []rune(s)

	var out []string
	for start := 0; start < len(runes); start += width {
		end := start + width
		if end > len(runes) {
			end = len(runes)
		}
		out = append(out, string(runes[start:end]))
	}
	return out
}

func runeLen(s string) int {
	return len([]rune(s))
}
