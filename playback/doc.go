// Package playback owns the shadowing session: the audio-position to
// segment mapping, segment navigation, and the segment edit operations.
//
// A Session wraps one text plus one audio source. The audio collaborator
// reports duration, time ticks, and completion through the Session's event
// methods; the Session keeps the active segment index current and calls the
// registered callback whenever it changes, which is what drives the
// highlight/scroll in a UI.
//
// A Session is owned by a single goroutine (the event loop of whatever UI or
// transport feeds it); it is not safe for concurrent use. Switching to a new
// text or audio source means closing the session and creating a new one;
// a closed session ignores every late audio callback.
package playback
