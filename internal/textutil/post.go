package textutil

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// MaxPostLength is the Threads limit for a text post, in characters.
const MaxPostLength = 500

// NormalizePost returns text in NFC form with surrounding whitespace removed.
func NormalizePost(text string) string {
	return strings.TrimSpace(norm.NFC.String(text))
}

// PostLength counts the characters of text the way the length limit sees them.
func PostLength(text string) int {
	return utf8.RuneCountInString(NormalizePost(text))
}

// Preview collapses whitespace runs to single spaces and truncates the result
// to at most limit characters, marking truncation with an ellipsis.
func Preview(text string, limit int) string {
	collapsed := strings.Join(strings.Fields(text), " ")
	if limit <= 0 || utf8.RuneCountInString(collapsed) <= limit {
		return collapsed
	}
	if limit == 1 {
		return "…"
	}
	runes := []rune(collapsed)
	return strings.TrimSpace(string(runes[:limit-1])) + "…"
}
