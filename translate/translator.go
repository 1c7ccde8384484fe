package translate

import "context"

// Translator converts text into a target language.
type Translator interface {
	// Name returns the provider name.
	Name() string
	// IsAvailable reports whether the provider is configured and usable.
	IsAvailable() bool
	// Translate returns text rendered in the target language. targetLang
	// is a short language code such as "zh", "ja", or "ko".
	Translate(ctx context.Context, text, targetLang string) (string, error)
}
