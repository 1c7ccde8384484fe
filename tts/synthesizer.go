package tts

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
)

// VoiceSetting selects the voice and its delivery parameters.
type VoiceSetting struct {
	VoiceID string  `json:"voice_id"`
	Speed   float64 `json:"speed"`
	Vol     float64 `json:"vol"`
	Pitch   float64 `json:"pitch"`
	Emotion string  `json:"emotion,omitempty"`
}

// VoiceModify applies optional timbre adjustments on top of the base voice.
type VoiceModify struct {
	Pitch        int    `json:"pitch,omitempty"`
	Intensity    int    `json:"intensity,omitempty"`
	Timbre       int    `json:"timbre,omitempty"`
	SoundEffects string `json:"sound_effects,omitempty"`
}

// AudioSetting controls the output encoding.
type AudioSetting struct {
	SampleRate int    `json:"sample_rate"`
	Bitrate    int    `json:"bitrate"`
	Format     string `json:"format"`
	Channel    int    `json:"channel"`
}

// DefaultAudioSetting returns the encoding used for practice audio.
func DefaultAudioSetting() AudioSetting {
	return AudioSetting{
		SampleRate: 32000,
		Bitrate:    128000,
		Format:     "mp3",
		Channel:    1,
	}
}

// Request describes one synthesis job.
type Request struct {
	Model        string       `json:"model"`
	Text         string       `json:"text"`
	VoiceSetting VoiceSetting `json:"voice_setting"`
	VoiceModify  *VoiceModify `json:"voice_modify,omitempty"`
	AudioSetting AudioSetting `json:"audio_setting"`
}

// Fingerprint returns a stable key identifying this request's content.
// Two requests with the same text and voice parameters share a fingerprint,
// so cached audio can be reused.
func (r Request) Fingerprint() string {
	data, err := json.Marshal(r)
	if err != nil {
		return r.Model + "|" + r.VoiceSetting.VoiceID + "|" + r.Text
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// Result holds the synthesized audio.
type Result struct {
	// Audio is the decoded audio payload.
	Audio []byte
	// Format is the audio container format, e.g. "mp3".
	Format string
}

// Synthesizer generates speech audio from text.
type Synthesizer interface {
	// Name returns the provider name.
	Name() string
	// IsAvailable reports whether the provider is configured and usable.
	IsAvailable() bool
	// Synthesize generates audio for the request.
	Synthesize(ctx context.Context, req Request) (*Result, error)
}
