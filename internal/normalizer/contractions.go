package normalizer

import (
	"regexp"

	"github.com/socialpulse/darijapulse/internal/lexicon"
)

type contractionRule struct {
	re *regexp.Regexp
	to string
}

var (
	fullContractionRules   = compileContractions(lexicon.FullContractions)
	simpleContractionRules = compileContractions(lexicon.SimpleContractions)
)

func compileContractions(rewrites []lexicon.Rewrite) []contractionRule {
	rules := make([]contractionRule, 0, len(rewrites))
	for _, rw := range rewrites {
		rules = append(rules, contractionRule{
			re: regexp.MustCompile(`(?i)` + regexp.QuoteMeta(rw.From)),
			to: rw.To,
		})
	}
	return rules
}

// ExpandContractions resolves French elided forms. Known full expressions
// translate as a unit first ("d'électricité" → "dhaw"); any apostrophe
// contraction still standing is then split into two tokens ("l'eau" →
// "el eau"). Matching is case-insensitive.
func ExpandContractions(text string) string {
	for _, rule := range fullContractionRules {
		text = rule.re.ReplaceAllString(text, rule.to)
	}
	for _, rule := range simpleContractionRules {
		text = rule.re.ReplaceAllString(text, rule.to)
	}
	return text
}
