package translate

import (
	"context"

	"github.com/kbukum/shadowreader/logger"
)

// Segments translates a list of display lines one by one. A line that
// fails to translate keeps its original text so a single bad call never
// blanks out the learner's view. The returned slice always has the same
// length and order as the input.
func Segments(ctx context.Context, tr Translator, texts []string, targetLang string, log *logger.Logger) []string {
	if log == nil {
		log = logger.GetGlobalLogger()
	}

	out := make([]string, len(texts))
	for i, text := range texts {
		if text == "" {
			out[i] = ""
			continue
		}
		translated, err := tr.Translate(ctx, text, targetLang)
		if err != nil {
			log.Warn("segment translation failed, keeping original", logger.Fields(
				"index", i,
				logger.FieldError, err.Error(),
			))
			out[i] = text
			continue
		}
		out[i] = translated
	}
	return out
}
