package sentiment

import "github.com/socialpulse/darijapulse/internal/models"

// Analyze produces the full sentiment record for a post from its canonical
// text and emoji signal. It never fails: any input, including the empty
// string, yields a fully populated record.
func (a Analyzer) Analyze(cleanText string, emojiSentiment *models.EmojiSentiment) models.SentimentAnalysis {
	textAnalysis := a.ScoreText(cleanText)

	var emojiScore float64
	var emojiCount int
	if emojiSentiment != nil && emojiSentiment.EmojiCount > 0 {
		emojiScore = emojiSentiment.AvgScore
		emojiCount = emojiSentiment.EmojiCount
	}

	finalScore := a.Combine(textAnalysis.Score, emojiScore)
	confidence := a.Confidence(textAnalysis, emojiCount, emojiScore, finalScore)

	return models.SentimentAnalysis{
		Label:        a.Label(finalScore),
		Score:        finalScore,
		Confidence:   confidence,
		TextAnalysis: textAnalysis,
		EmojiScore:   emojiScore,
		NeedsReview:  confidence < a.params.ReviewThreshold,
	}
}
