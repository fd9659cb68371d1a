package extract

const (
	// DefaultMaxChars bounds the extracted text forwarded to the provider.
	DefaultMaxChars = 100000

	// TranslationMaxChars is tighter because translation consumes more
	// output tokens per input character than the other tasks.
	TranslationMaxChars = 50000
)

// Limit enforces a maximum character budget on extracted text. The cut is
// a plain prefix; no attempt is made to respect sentence or paragraph
// boundaries. Limit is idempotent for a fixed budget.
func Limit(text string, maxChars int) (string, bool) {
	runes := []rune(text)
	if len(runes) <= maxChars {
		return text, false
	}
	return string(runes[:maxChars]), true
}
