package sentiment

import (
	"regexp"
	"strings"

	"github.com/jonreiter/govader"
	"github.com/russross/blackfriday/v2"
)

var (
	vader = govader.NewSentimentIntensityAnalyzer()

	markdownLinkRe = regexp.MustCompile(`\[(.*?)\]\((https?:\/\/[^\s\)]+)\)`)
	bareURLRe      = regexp.MustCompile(`https?://\S+|www\.\S+`)
)

// RemoveLinks strips markdown links (keeping the anchor text) and bare URLs.
func RemoveLinks(input string) string {
	input = markdownLinkRe.ReplaceAllString(input, "$1")
	return bareURLRe.ReplaceAllString(input, "")
}

// MarkdownToText renders any markdown formatting away and collapses the
// result to a single line of plain text.
func MarkdownToText(input string) string {
	output := blackfriday.Run([]byte(input), blackfriday.WithNoExtensions())
	plain := strings.Join(strings.Fields(string(output)), " ")
	return RemoveLinks(plain)
}

// CrossCheck runs VADER over the Latin/French share of a post as a second
// opinion for review items. VADER knows nothing about Darija, so this is
// only attached to low-confidence posts where the French vocabulary carries
// most of the signal.
func (a Analyzer) CrossCheck(text string) (float64, string) {
	plain := MarkdownToText(text)

	scores := vader.PolarityScores(plain)
	return scores.Compound, a.Label(scores.Compound)
}
