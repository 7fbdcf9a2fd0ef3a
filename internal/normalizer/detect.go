package normalizer

import "strings"

var frenchMarkers = []string{"le", "la", "les", "un", "une", "est", "sont", "avec"}

// DetectLanguage guesses the dominant register of a post: "ar" for
// Arabic-script text, "fr" for French, "da" for Latin-script Darija. This
// is a character-ratio heuristic, not real language identification.
func DetectLanguage(text string) string {
	arabic, latin := 0, 0
	for _, r := range text {
		switch {
		case isArabicRune(r):
			arabic++
		case (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z'):
			latin++
		}
	}

	if arabic > latin {
		return "ar"
	}
	if strings.ContainsAny(text, "37952") {
		return "da"
	}
	lower := strings.ToLower(text)
	for _, marker := range frenchMarkers {
		if strings.Contains(lower, marker) {
			return "fr"
		}
	}
	return "da"
}
