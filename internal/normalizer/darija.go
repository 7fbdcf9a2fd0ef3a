package normalizer

import (
	"strings"

	"github.com/socialpulse/darijapulse/internal/lexicon"
)

// ConvertDigits rewrites digit-as-letter conventions inside a word
// ("9wi" → "kwi", "b7ar" → "bhar"). The rewrites are ordered: "5" → "kh"
// runs first so its two-letter output is not reinterpreted.
func ConvertDigits(word string) string {
	for _, rw := range lexicon.DigitRewrites {
		word = strings.ReplaceAll(word, rw.From, rw.To)
	}
	return word
}

// NormalizeDarija lowercases the text and canonicalizes every token through
// the ordered lookup chain: digit conversion, keep-as-is set, spelling
// variants, French vocabulary, Arabic vocabulary, then the converted token
// itself. First hit wins. Variant folding runs before vocabulary lookups so
// all surface spellings funnel into one key. Placeholder tokens pass
// through untouched so protected spans survive to restoration.
func NormalizeDarija(text string) string {
	words := strings.Fields(strings.ToLower(text))
	out := make([]string, 0, len(words))

	for _, word := range words {
		if IsPlaceholder(word) {
			out = append(out, word)
			continue
		}

		core, residue := stripTokenPunctuation(word)
		if core == "" {
			continue
		}

		converted := ConvertDigits(core)
		switch {
		case lexicon.KeepAsIs[converted]:
			out = append(out, converted+residue)
		case lexicon.Variants[converted] != "":
			out = append(out, lexicon.Variants[converted]+residue)
		case lexicon.FrenchWords[core] != "":
			out = append(out, lexicon.FrenchWords[core]+residue)
		case lexicon.ArabicWords[core] != "":
			out = append(out, lexicon.ArabicWords[core]+residue)
		default:
			out = append(out, converted+residue)
		}
	}
	return strings.Join(out, " ")
}

// stripTokenPunctuation removes non-word runes from a token, keeping any
// trailing punctuation run as a residue reattached after lookup.
func stripTokenPunctuation(word string) (core, residue string) {
	runes := []rune(word)
	end := len(runes)
	for end > 0 && !isWordRune(runes[end-1]) {
		end--
	}
	residue = string(runes[end:])

	var b strings.Builder
	for _, r := range runes[:end] {
		if isWordRune(r) {
			b.WriteRune(r)
		}
	}
	return b.String(), residue
}
