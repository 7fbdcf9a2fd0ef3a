package sentiment

import (
	"math"

	"github.com/socialpulse/darijapulse/internal/models"
	"github.com/socialpulse/darijapulse/internal/utils"
)

// Combine merges the lexical and emoji scores. Either signal alone passes
// through unweighted; when both are present the weighted sum applies,
// rounded to three decimals.
func (a Analyzer) Combine(textScore, emojiScore float64) float64 {
	if emojiScore == 0 {
		return textScore
	}
	if textScore == 0 {
		return emojiScore
	}
	combined := textScore*a.params.TextWeight + emojiScore*a.params.EmojiWeight
	return utils.Round(combined, 3)
}

// Label maps a combined score onto positive/negative/neutral using the
// configured thresholds.
func (a Analyzer) Label(score float64) string {
	switch {
	case score >= a.params.PositiveThreshold:
		return "positive"
	case score <= a.params.NegativeThreshold:
		return "negative"
	default:
		return "neutral"
	}
}

// Confidence estimates how trustworthy the label is. It starts at 0.5 and
// accrues for keyword hits, emoji presence, score magnitude and agreement
// between the two signals; disagreement costs. Clamped to [0, 1].
func (a Analyzer) Confidence(text models.TextAnalysis, emojiCount int, emojiScore, finalScore float64) float64 {
	confidence := 0.5

	keywords := len(text.PositiveWords) + len(text.NegativeWords)
	switch {
	case keywords >= 3:
		confidence += 0.2
	case keywords >= 1:
		confidence += 0.1
	}

	switch {
	case emojiCount >= 2:
		confidence += 0.15
	case emojiCount >= 1:
		confidence += 0.1
	}

	switch {
	case math.Abs(finalScore) >= 0.5:
		confidence += 0.15
	case math.Abs(finalScore) >= 0.3:
		confidence += 0.1
	}

	if text.Score != 0 && emojiScore != 0 {
		if (text.Score > 0) == (emojiScore > 0) {
			confidence += 0.1
		} else {
			confidence -= 0.1
		}
	}

	return utils.Round(utils.Clamp(confidence, 0, 1), 2)
}
