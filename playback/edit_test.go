package playback

import (
	"math"
	"strings"
	"testing"

	"github.com/kbukum/shadowreader/segment"
)

func TestMergePrevious_SpaceSeparated(t *testing.T) {
	s, _ := readySession(t)

	s.MergePrevious(1)
	segs := s.Segments()
	if len(segs) != 2 {
		t.Fatalf("expected 2 segments after merge, got %d", len(segs))
	}
	if segs[0].Text != "First sentence. Second one here." {
		t.Fatalf("unexpected merged text %q", segs[0].Text)
	}
}

func TestMergePrevious_KeepsOuterTimestamps(t *testing.T) {
	s, _ := readySession(t)
	before := s.Segments()

	s.MergePrevious(1)
	merged := s.Segments()[0]
	if merged.Start != before[0].Start || merged.End != before[1].End {
		t.Fatalf("merged interval [%v, %v], expected [%v, %v]",
			merged.Start, merged.End, before[0].Start, before[1].End)
	}
}

func TestMerge_HardWordSplitJoinsWithoutSpace(t *testing.T) {
	// A 90-char word is chopped into 40/40/10 chunks; merging the chunks
	// back must not inject spaces into the word.
	word := strings.Repeat("abcde", 18)
	s := NewSession(word)
	s.Attach(&fakeHandle{duration: 9})
	s.DurationKnown(9)
	if len(s.Segments()) != 3 {
		t.Fatalf("expected 3 chunks, got %d", len(s.Segments()))
	}

	s.MergeNext(0)
	s.MergeNext(0)
	segs := s.Segments()
	if len(segs) != 1 {
		t.Fatalf("expected 1 segment, got %d", len(segs))
	}
	if segs[0].Text != word {
		t.Fatalf("chunked word not reconstructed: %q", segs[0].Text)
	}
}

func TestMerge_CJKBoundaryKeepsSpace(t *testing.T) {
	s := NewSession("你好。再见。")
	s.Attach(&fakeHandle{duration: 4})
	s.DurationKnown(4)

	s.MergeNext(0)
	if got := s.Segments()[0].Text; got != "你好。 再见。" {
		t.Fatalf("non-Latin boundary must merge with a space, got %q", got)
	}
}

func TestMerge_OutOfRangeIsNoOp(t *testing.T) {
	s, _ := readySession(t)

	s.MergePrevious(0)  // nothing before the first segment
	s.MergePrevious(-1)
	s.MergePrevious(99)
	s.MergeNext(2) // nothing after the last segment

	if len(s.Segments()) != 3 {
		t.Fatalf("boundary merges must be no-ops, got %d segments", len(s.Segments()))
	}
}

func TestMerge_AdjustsActiveIndex(t *testing.T) {
	s, _ := readySession(t)
	s.SeekToSegment(2)

	s.MergePrevious(1)
	if s.ActiveIndex() != 1 {
		t.Fatalf("active index must shift left with the merge, got %d", s.ActiveIndex())
	}
}

func TestInsertAfter_HalvesInterval(t *testing.T) {
	s, _ := readySession(t)
	before := s.Segments()

	s.InsertAfter(1)
	segs := s.Segments()
	if len(segs) != 4 {
		t.Fatalf("expected 4 segments, got %d", len(segs))
	}

	mid := before[1].Start + (before[1].End-before[1].Start)/2
	if math.Abs(segs[1].End-mid) > 1e-9 {
		t.Errorf("split segment should end at the midpoint %v, got %v", mid, segs[1].End)
	}
	if segs[2].Text != "" {
		t.Errorf("inserted segment must be an empty placeholder, got %q", segs[2].Text)
	}
	if math.Abs(segs[2].Start-mid) > 1e-9 || math.Abs(segs[2].End-before[1].End) > 1e-9 {
		t.Errorf("placeholder interval [%v, %v], expected [%v, %v]", segs[2].Start, segs[2].End, mid, before[1].End)
	}
	if segs[3] != before[2] {
		t.Errorf("segments after the insertion point must be untouched")
	}
}

func TestInsertAfter_OutOfRangeIsNoOp(t *testing.T) {
	s, _ := readySession(t)
	s.InsertAfter(-1)
	s.InsertAfter(3)
	if len(s.Segments()) != 3 {
		t.Fatalf("expected 3 segments, got %d", len(s.Segments()))
	}
}

func TestSetText_ThenReallocate(t *testing.T) {
	s, _ := readySession(t)

	s.InsertAfter(0)
	s.SetText(1, "a brand new middle line")
	s.Reallocate()

	segs := s.Segments()
	total := segment.TotalChars(segs)
	for i, seg := range segs {
		want := float64(seg.Len()) / float64(total) * s.Duration()
		if i == len(segs)-1 {
			// Last segment absorbs rounding, compare loosely.
			if math.Abs(seg.Duration()-want) > 1e-6 {
				t.Errorf("segment %d: duration %v, expected %v", i, seg.Duration(), want)
			}
			continue
		}
		if math.Abs(seg.Duration()-want) > 1e-9 {
			t.Errorf("segment %d: duration %v, expected %v", i, seg.Duration(), want)
		}
	}
	if segs[len(segs)-1].End != s.Duration() {
		t.Errorf("reallocation must cover the full duration, ends at %v", segs[len(segs)-1].End)
	}
}

func TestMergeThenResplit_RoundTrip(t *testing.T) {
	s := NewSession("Hello world. Second line here.")
	s.Attach(&fakeHandle{duration: 6})
	s.DurationKnown(6)
	original := segment.Texts(s.Segments())

	s.MergeNext(0)
	if len(s.Segments()) != 1 {
		t.Fatalf("expected 1 merged segment, got %d", len(s.Segments()))
	}

	// Re-split at the same boundary: insert a placeholder and restore the
	// two original texts.
	s.InsertAfter(0)
	s.SetText(0, original[0])
	s.SetText(1, original[1])
	s.Reallocate()

	restored := segment.Texts(s.Segments())
	if restored[0] != original[0] || restored[1] != original[1] {
		t.Fatalf("round trip failed: %v vs %v", restored, original)
	}
}
