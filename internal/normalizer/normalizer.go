// Package normalizer canonicalizes mixed Arabic/French/Darija social text
// into a single Darija-in-Latin-script rendering. The pipeline is a pure
// function of its input: no I/O, no shared mutable state, safe to run
// concurrently across posts.
package normalizer

import (
	"regexp"
	"strings"

	"github.com/socialpulse/darijapulse/internal/emoji"
)

// punctRe matches anything that is not a letter, digit, underscore or
// whitespace. Unicode classes keep unmapped Arabic words intact.
var punctRe = regexp.MustCompile(`[^\p{L}\p{N}_\s]`)

// StripPunctuation replaces remaining punctuation with spaces and collapses
// whitespace runs.
func StripPunctuation(text string) string {
	text = punctRe.ReplaceAllString(text, " ")
	return strings.Join(strings.Fields(text), " ")
}

// Normalize runs the full canonicalization pipeline: emoji removal, special
// character cleanup, numeric/date span protection, French contraction
// expansion, Arabic transliteration, character folding, Darija lexical
// normalization, punctuation stripping and finally span restoration.
// Restoration runs last so protected substrings reappear byte-identical
// regardless of the lowercasing and rewriting in between.
func Normalize(text string) string {
	if text == "" {
		return text
	}

	text = emoji.Remove(text)
	text = CleanSpecialChars(text)

	text, spans := Protect(text)

	text = ExpandContractions(text)
	if IsArabicText(text) {
		text = TransliterateArabic(text)
	}
	text = FoldArabicChars(text)
	text = NormalizeDarija(text)
	text = StripPunctuation(text)

	return Restore(text, spans)
}
