package playback

// Handle is the audio playback collaborator a Session controls.
//
// The Session issues commands through this interface; the audio owner feeds
// events back through Session.DurationKnown, Session.TimeAdvance and
// Session.Ended as they occur.
type Handle interface {
	// Duration returns the audio length in seconds, or 0 if not yet known.
	Duration() float64
	// CurrentTime returns the play-head position in seconds.
	CurrentTime() float64
	// Seek moves the play-head to t seconds.
	Seek(t float64)
	// Play starts or resumes playback.
	Play() error
	// Pause pauses playback.
	Pause()
}
