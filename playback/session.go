package playback

import (
	"github.com/google/uuid"

	"github.com/kbukum/shadowreader/logger"
	"github.com/kbukum/shadowreader/segment"
)

// State describes where a session is in its lifecycle.
type State int

const (
	// StateIdle means no audio source has been attached yet.
	StateIdle State = iota
	// StateLoading means audio is attached but its duration is still unknown.
	StateLoading
	// StateReady means segments are time-aligned and position mapping is live.
	StateReady
)

// String returns the lowercase state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	default:
		return "unknown"
	}
}

// Session binds one text's segments to one audio source and keeps the
// active segment in sync with the play-head.
type Session struct {
	id       string
	log      *logger.Logger
	handle   Handle
	segments []segment.Segment

	state         State
	totalDuration float64
	allocated     bool
	playing       bool
	activeIndex   int
	closed        bool

	onSegmentChange func(index int)
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the session logger.
func WithLogger(log *logger.Logger) Option {
	return func(s *Session) { s.log = log }
}

// WithSegmentChange registers a callback invoked whenever the active segment
// index changes (highlight/scroll hook).
func WithSegmentChange(fn func(index int)) Option {
	return func(s *Session) { s.onSegmentChange = fn }
}

// NewSession segments text and returns an idle session. Segments carry zero
// timestamps until an audio source is attached and its duration becomes
// known.
func NewSession(text string, opts ...Option) *Session {
	s := &Session{
		id:       uuid.New().String(),
		segments: segment.Split(text),
		state:    StateIdle,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.log == nil {
		s.log = logger.GetGlobalLogger().WithComponent("playback")
	}
	s.log.Debug("session created", logger.Fields(
		logger.FieldSessionID, s.id,
		logger.FieldSegments, len(s.segments),
	))
	return s
}

// ID returns the session's unique identifier.
func (s *Session) ID() string { return s.id }

// State returns the current lifecycle state.
func (s *Session) State() State { return s.state }

// Playing reports whether playback is running.
func (s *Session) Playing() bool { return s.playing }

// ActiveIndex returns the current active segment index (0 when nothing has
// played yet, -1 when there are no segments).
func (s *Session) ActiveIndex() int {
	if len(s.segments) == 0 {
		return -1
	}
	return s.activeIndex
}

// Duration returns the attached audio's total duration, 0 until known.
func (s *Session) Duration() float64 { return s.totalDuration }

// Segments returns a copy of the session's segment list.
func (s *Session) Segments() []segment.Segment {
	return segment.Clone(s.segments)
}

// Attach binds the audio source. The session moves to Loading until the
// source reports its duration.
func (s *Session) Attach(h Handle) {
	if s.closed || h == nil {
		return
	}
	s.handle = h
	s.state = StateLoading
}

// DurationKnown is called by the audio owner once metadata is available.
// This is the trigger that time-aligns the segments for the first time;
// position mapping is inert until it fires with a positive duration.
func (s *Session) DurationKnown(d float64) {
	if s.closed || s.state != StateLoading {
		return
	}
	if d <= 0 {
		s.log.Warn("audio reported non-positive duration, staying in loading", logger.Fields(
			logger.FieldSessionID, s.id,
			logger.FieldDuration, d,
		))
		return
	}

	s.totalDuration = d
	s.segments = segment.Allocate(s.segments, d)
	s.allocated = true
	s.state = StateReady
	s.activeIndex = 0

	s.log.Info("segments time-aligned", logger.Fields(
		logger.FieldSessionID, s.id,
		logger.FieldSegments, len(s.segments),
		logger.FieldDuration, d,
	))
}

// TimeAdvance is called by the audio owner on every playback tick. It
// re-derives the active segment from the play-head position and fires the
// segment-change callback when it moved.
func (s *Session) TimeAdvance(t float64) {
	if s.closed || s.state != StateReady || !s.allocated {
		return
	}
	idx := ActiveIndex(s.segments, t)
	if idx >= 0 && idx != s.activeIndex {
		s.activeIndex = idx
		s.notifySegmentChange()
	}
}

// Ended is called by the audio owner on natural playback completion. The
// session rewinds to the first segment and pauses; the segment list is kept.
func (s *Session) Ended() {
	if s.closed {
		return
	}
	s.playing = false
	if s.activeIndex != 0 {
		s.activeIndex = 0
		s.notifySegmentChange()
	}
}

// Play resumes playback. No-op without an attached source.
func (s *Session) Play() {
	if s.closed || s.handle == nil {
		return
	}
	if err := s.handle.Play(); err != nil {
		s.log.Error("playback failed", logger.ErrorFields("play", err))
		return
	}
	s.playing = true
}

// Pause pauses playback. No-op without an attached source.
func (s *Session) Pause() {
	if s.closed || s.handle == nil {
		return
	}
	s.handle.Pause()
	s.playing = false
}

// SeekToSegment moves the play-head to the start of the segment at index and
// resumes playback. The index is clamped to the valid range; the active
// index updates eagerly rather than waiting for the next playback tick.
func (s *Session) SeekToSegment(index int) {
	if s.closed || s.handle == nil || s.state != StateReady || len(s.segments) == 0 {
		return
	}
	index = clampIndex(index, len(s.segments))

	s.handle.Pause()
	if index != s.activeIndex {
		s.activeIndex = index
		s.notifySegmentChange()
	}
	s.handle.Seek(s.segments[index].Start)
	s.Play()
}

// Next advances to the following segment; no-op on the last one.
func (s *Session) Next() {
	s.SeekToSegment(s.activeIndex + 1)
}

// Previous moves back one segment; no-op on the first one.
func (s *Session) Previous() {
	s.SeekToSegment(s.activeIndex - 1)
}

// Restart rewinds to the beginning and resumes playback.
func (s *Session) Restart() {
	if s.closed || s.handle == nil {
		return
	}
	s.handle.Seek(0)
	if s.activeIndex != 0 {
		s.activeIndex = 0
		s.notifySegmentChange()
	}
	s.Play()
}

// Reallocate recomputes every segment interval from the current texts and
// the known duration. Callers run it after any text edit; it also refreshes
// the active index against the current play-head.
func (s *Session) Reallocate() {
	if s.closed || !s.allocated || s.totalDuration <= 0 {
		return
	}
	s.segments = segment.Allocate(s.segments, s.totalDuration)
	if s.handle != nil {
		if idx := ActiveIndex(s.segments, s.handle.CurrentTime()); idx >= 0 {
			s.activeIndex = idx
		}
	}
}

// Close tears the session down. Playback is paused and every subsequent
// audio event or command is ignored, so a stale callback from a replaced
// source can never touch a newer session's state.
func (s *Session) Close() {
	if s.closed {
		return
	}
	s.closed = true
	s.playing = false
	if s.handle != nil {
		s.handle.Pause()
	}
	s.log.Debug("session closed", logger.Fields(logger.FieldSessionID, s.id))
}

func (s *Session) notifySegmentChange() {
	if s.onSegmentChange != nil {
		s.onSegmentChange(s.activeIndex)
	}
}

func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i > n-1 {
		return n - 1
	}
	return i
}
