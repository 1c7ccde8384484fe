// Package translate renders practice text into the learner's target
// language. The GLM implementation calls the Zhipu chat-completions API
// with a strict translate-only prompt. Segments translates a list of
// display lines, falling back to the original text for any line that
// fails.
package translate
