package normalizer

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"sync/atomic"
	"unicode"
	"unicode/utf8"

	"github.com/socialpulse/darijapulse/internal/lexicon"
)

// SpanMap records the placeholder→original substitutions made for one text.
// It is produced by Protect and consumed by Restore within a single post's
// processing and must never be shared across posts.
type SpanMap struct {
	spans []protectedSpan
}

type protectedSpan struct {
	placeholder string
	original    string
}

// Len reports how many spans were protected.
func (m *SpanMap) Len() int {
	if m == nil {
		return 0
	}
	return len(m.spans)
}

var placeholderRe = regexp.MustCompile(`(?i)^prot\d+prot$`)

// IsPlaceholder reports whether a token is a protection placeholder, in
// either its original or lowercased form.
func IsPlaceholder(token string) bool {
	return placeholderRe.MatchString(token)
}

// protectRule is one protection pattern. Go's \b is ASCII-only, so word
// boundaries adjoining Arabic script are enforced in code instead: before
// requires the rune preceding the match to be a non-word rune, after the
// rune following it.
type protectRule struct {
	re     *regexp.Regexp
	before bool
	after  bool
	// window widens the already-protected check to the match's
	// neighborhood. Month-date passes overlap each other and need it;
	// numeric passes only refuse to re-protect a placeholder itself, so
	// adjacent spans still protect independently.
	window bool
}

var protectRules = buildProtectRules()

func buildProtectRules() []protectRule {
	arabicMonths := monthAlternation(lexicon.ArabicMonths)
	frenchMonths := monthAlternation(lexicon.FrenchMonths)

	rules := []protectRule{
		// Arabic-month date ranges: 2 و3 ماي 2025
		{regexp.MustCompile(`\d{1,2}\s*[و\-]\s*\d{1,2}\s+(?:` + arabicMonths + `)(\s+\d{4})?`), true, true, true},
		// single Arabic-month dates: 30 أكتوبر 2025
		{regexp.MustCompile(`\d{1,2}\s+(?:` + arabicMonths + `)(\s+\d{4})?`), true, true, true},
		// French-month date ranges: 2 et 3 mai 2025
		{regexp.MustCompile(`(?i)\d{1,2}\s*(?:et|[\-و])\s*\d{1,2}\s+(?:` + frenchMonths + `)(\s+\d{4})?`), true, true, true},
		// single French-month dates: 25 décembre
		{regexp.MustCompile(`(?i)\d{1,2}\s+(?:` + frenchMonths + `)(\s+\d{4})?`), true, true, true},
		// cross-month ranges: 30 أكتوبر لـ1 نوفمبر
		{regexp.MustCompile(`\d{1,2}\s+(?:` + arabicMonths + `)\s+[لِـ]+\s*\d{1,2}\s+(?:` + arabicMonths + `)`), true, true, true},
		// times: 18:30, 14h30
		{regexp.MustCompile(`\d{1,2}:\d{2}`), true, true, false},
		{regexp.MustCompile(`(?i)\d{1,2}h\d{2}`), true, true, false},
		// dates: 25/12/2024, 25/12
		{regexp.MustCompile(`\d{1,2}[/\-. ]\d{1,2}[/\-. ]\d{2,4}`), true, true, false},
		{regexp.MustCompile(`\d{1,2}[/\-.]\d{1,2}`), true, true, false},
		// years 1900–2099
		{regexp.MustCompile(`(?:19|20)\d{2}`), true, true, false},
		// percentages
		{regexp.MustCompile(`\d+%`), true, false, false},
		// prices: 50dt, 100 tnd, 20 دينار
		{regexp.MustCompile(`(?i)\d+(\.\d+)?\s*(?:dt|tnd|دينار)`), true, true, false},
	}
	return rules
}

// monthAlternation builds a longest-first alternation so a short month name
// never shadows a longer one sharing its head.
func monthAlternation(months []string) string {
	sorted := append([]string(nil), months...)
	sort.Slice(sorted, func(i, j int) bool { return len(sorted[i]) > len(sorted[j]) })
	for i, m := range sorted {
		sorted[i] = regexp.QuoteMeta(m)
	}
	return strings.Join(sorted, "|")
}

// placeholderSeq numbers placeholders across all Protect calls, so a span
// map can never substitute into another post's text.
var placeholderSeq atomic.Uint64

// Protect replaces date, time, year, percentage and price substrings with
// opaque PROT<n>PROT placeholders so the digit and vocabulary rewrites
// cannot corrupt them. Matches are replaced in reverse index order so
// earlier replacements do not shift later offsets. A candidate overlapping
// an existing placeholder is skipped.
func Protect(text string) (string, *SpanMap) {
	spans := &SpanMap{}

	for _, rule := range protectRules {
		matches := rule.re.FindAllStringIndex(text, -1)
		for i := len(matches) - 1; i >= 0; i-- {
			start, end := matches[i][0], matches[i][1]
			if rule.before && wordRuneBefore(text, start) {
				continue
			}
			if rule.after && wordRuneAt(text, end) {
				continue
			}
			if strings.Contains(text[start:end], "PROT") {
				continue
			}
			if rule.window && alreadyProtected(text, start, end) {
				continue
			}
			placeholder := fmt.Sprintf("PROT%dPROT", placeholderSeq.Add(1))
			spans.spans = append(spans.spans, protectedSpan{placeholder, text[start:end]})
			text = text[:start] + placeholder + text[end:]
		}
	}
	return text, spans
}

// Restore substitutes every placeholder (and its lowercased form, since the
// pipeline lowercases between Protect and Restore) back to the original
// substring, byte for byte. It must run as the final pipeline step.
func Restore(text string, spans *SpanMap) string {
	if spans == nil {
		return text
	}
	for _, s := range spans.spans {
		text = strings.ReplaceAll(text, s.placeholder, s.original)
		text = strings.ReplaceAll(text, strings.ToLower(s.placeholder), s.original)
	}
	return text
}

// alreadyProtected checks the match and a small window around it for a
// placeholder marker, preventing double protection by later passes.
func alreadyProtected(text string, start, end int) bool {
	lo := start - 10
	if lo < 0 {
		lo = 0
	}
	hi := end + 10
	if hi > len(text) {
		hi = len(text)
	}
	return strings.Contains(text[lo:hi], "PROT")
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

func wordRuneBefore(s string, idx int) bool {
	if idx == 0 {
		return false
	}
	r, _ := utf8.DecodeLastRuneInString(s[:idx])
	return isWordRune(r)
}

func wordRuneAt(s string, idx int) bool {
	if idx >= len(s) {
		return false
	}
	r, _ := utf8.DecodeRuneInString(s[idx:])
	return isWordRune(r)
}
