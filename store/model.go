package store

// Note is a saved practice text.
type Note struct {
	ID string `json:"id"`
	// Title is the display title, usually the first heading of the text.
	Title string `json:"title"`
	// Date is a preformatted display date.
	Date string `json:"date"`
	// Timestamp orders notes newest-first.
	Timestamp int64    `json:"timestamp"`
	Tags      []string `json:"tags"`
	// RawContent is the full source text before segmentation.
	RawContent string `json:"rawContent"`
}

// Voice is a saved synthesis result the learner can replay.
type Voice struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Date      string `json:"date"`
	Timestamp int64  `json:"timestamp"`
	// AudioURL points at the stored audio, typically a data URL.
	AudioURL string  `json:"audioUrl"`
	Duration float64 `json:"duration"`
	// Text is the newline-joined segment text the audio was generated from.
	Text string `json:"text"`
}

// Settings holds the learner's synthesis and display preferences.
type Settings struct {
	Model           string  `json:"model,omitempty"`
	SelectedVoice   string  `json:"selectedVoice,omitempty"`
	Speed           float64 `json:"speed,omitempty"`
	Vol             float64 `json:"vol,omitempty"`
	Pitch           float64 `json:"pitch,omitempty"`
	Emotion         string  `json:"emotion,omitempty"`
	ModPitch        int     `json:"modPitch,omitempty"`
	Intensity       int     `json:"intensity,omitempty"`
	Timbre          int     `json:"timbre,omitempty"`
	SoundEffect     string  `json:"soundEffect,omitempty"`
	ShowAdvanced    bool    `json:"showAdvanced,omitempty"`
	TranslationLang string  `json:"translationLang,omitempty"`
}

// Associations maps a sentence key to the voice IDs recorded for it.
type Associations map[string][]string

// Snapshot is the full on-disk document.
type Snapshot struct {
	Notes        []Note       `json:"notes"`
	Voices       []Voice      `json:"voices"`
	Associations Associations `json:"associations"`
	Settings     Settings     `json:"settings"`
}
