package normalizer

import (
	"strings"
	"unicode"

	"github.com/socialpulse/darijapulse/internal/lexicon"
)

func isArabicRune(r rune) bool {
	return r >= 0x0600 && r <= 0x06FF
}

// IsArabicText reports whether more than 30% of the word characters in text
// are Arabic script.
func IsArabicText(text string) bool {
	arabic, total := 0, 0
	for _, r := range text {
		if isWordRune(r) {
			total++
			if isArabicRune(r) {
				arabic++
			}
		}
	}
	if total == 0 {
		return false
	}
	return float64(arabic)/float64(total) > 0.3
}

// TransliterateArabic converts Arabic-script tokens to a Darija-Latin
// rendering. Per token: whole-word dictionary lookup first, then clitic
// prefix separation with a second lookup, then character-by-character
// mapping as a last resort. Non-Arabic tokens pass through unchanged.
func TransliterateArabic(text string) string {
	words := strings.Fields(text)
	out := make([]string, 0, len(words))

	for _, word := range words {
		before, core, after := splitPunctuation(word)
		if core == "" {
			if before != "" || after != "" {
				out = append(out, before+after)
			}
			continue
		}
		if !strings.ContainsFunc(core, isArabicRune) {
			out = append(out, word)
			continue
		}
		out = append(out, before+transliterateWord(core)+after)
	}
	return strings.Join(out, " ")
}

func transliterateWord(word string) string {
	if latin, ok := lexicon.ArabicWords[word]; ok {
		return latin
	}

	if prefix, base, ok := separatePrefix(word); ok {
		if latin, found := lexicon.ArabicWords[base]; found {
			return joinPrefix(prefix, latin)
		}
		// retry without a definite article left on the base
		if rest, found := strings.CutPrefix(base, "ال"); found {
			if latin, hit := lexicon.ArabicWords[rest]; hit {
				return joinPrefix(prefix, latin)
			}
		}
	}

	var b strings.Builder
	for _, r := range word {
		if latin, ok := lexicon.ArabicLetters[r]; ok {
			b.WriteString(latin)
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// separatePrefix tries the attachable clitic prefixes longest-first and
// returns the prefix's Latin fragment plus the remaining base word. The bare
// definite article contributes an empty fragment.
func separatePrefix(word string) (string, string, bool) {
	for _, prefix := range lexicon.ArabicPrefixes {
		if len(word) > len(prefix) && strings.HasPrefix(word, prefix) {
			return lexicon.PrefixToLatin[prefix], word[len(prefix):], true
		}
	}
	return "", word, false
}

// joinPrefix glues a prefix fragment onto a translated base, turning the
// underscore joints into single spaces.
func joinPrefix(prefix, base string) string {
	joined := strings.ReplaceAll(prefix+base, "_", " ")
	return strings.Join(strings.Fields(joined), " ")
}

// splitPunctuation peels leading and trailing runes that are neither
// alphanumeric nor Arabic script off a token.
func splitPunctuation(word string) (before, core, after string) {
	runes := []rune(word)
	start, end := 0, len(runes)
	for start < end && !tokenRune(runes[start]) {
		start++
	}
	for end > start && !tokenRune(runes[end-1]) {
		end--
	}
	return string(runes[:start]), string(runes[start:end]), string(runes[end:])
}

func tokenRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || isArabicRune(r)
}
