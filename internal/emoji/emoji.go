// Package emoji extracts a post-level sentiment signal from emojis and
// strips them from text before normalization. Polarity comes from the
// lexicon tables; emojis outside the tables count as neutral.
package emoji

import (
	"strings"

	"github.com/socialpulse/darijapulse/internal/lexicon"
	"github.com/socialpulse/darijapulse/internal/models"
	"github.com/socialpulse/darijapulse/internal/utils"
)

const (
	variationSelector = 0xFE0F
	zeroWidthJoiner   = 0x200D
)

// emojiRanges covers the common emoji blocks. Skin-tone modifiers fall
// inside the pictograph block and are treated like any other emoji rune.
var emojiRanges = [][2]rune{
	{0x1F300, 0x1F5FF}, // symbols and pictographs
	{0x1F600, 0x1F64F}, // emoticons
	{0x1F680, 0x1F6FF}, // transport and map
	{0x1F900, 0x1F9FF}, // supplemental
	{0x1FA70, 0x1FAFF}, // extended-A
	{0x2600, 0x26FF},   // miscellaneous symbols
	{0x2700, 0x27BF},   // dingbats
	{0x231A, 0x23FA},   // clocks, hourglasses, media controls
	{0x1F1E6, 0x1F1FF}, // regional indicators
	{0x2B50, 0x2B55},   // stars and circles
}

// IsEmoji reports whether r falls in one of the recognized emoji blocks.
func IsEmoji(r rune) bool {
	for _, rng := range emojiRanges {
		if r >= rng[0] && r <= rng[1] {
			return true
		}
	}
	return false
}

// Extract scans text and aggregates every emoji into a post-level signal.
// Context-dependent emojis are resolved by majority vote over their keyword
// lists within the lowercased text; unknown emojis count as neutral. A text
// without emojis yields the zero-valued neutral record.
func Extract(text string) models.EmojiSentiment {
	result := models.EmojiSentiment{DominantSentiment: "neutral"}
	lower := strings.ToLower(text)

	for _, r := range text {
		if r == variationSelector || r == zeroWidthJoiner {
			continue
		}
		switch {
		case lexicon.ContextEmojis[r].NeutralLabel != "":
			hit := resolveContext(r, lexicon.ContextEmojis[r], lower)
			result.Emojis = append(result.Emojis, hit)
			result.TotalScore += hit.Score
			result.EmojiCount++
		case lexicon.EmojiSentiments[r].Label != "":
			entry := lexicon.EmojiSentiments[r]
			result.Emojis = append(result.Emojis, models.EmojiHit{
				Glyph:     string(r),
				Sentiment: entry.Sentiment,
				Score:     entry.Score,
				Label:     entry.Label,
			})
			result.TotalScore += entry.Score
			result.EmojiCount++
		case IsEmoji(r):
			result.Emojis = append(result.Emojis, models.EmojiHit{
				Glyph:     string(r),
				Sentiment: "neutral",
				Label:     "emoji",
			})
			result.EmojiCount++
		}
	}

	if result.EmojiCount > 0 {
		result.AvgScore = result.TotalScore / float64(result.EmojiCount)
	}
	result.TotalScore = utils.Round(result.TotalScore, 2)
	result.AvgScore = utils.Round(result.AvgScore, 2)

	switch {
	case result.AvgScore > 0.2:
		result.DominantSentiment = "positive"
	case result.AvgScore < -0.2:
		result.DominantSentiment = "negative"
	}
	return result
}

// resolveContext decides an ambiguous emoji's polarity by counting its
// positive and negative context keywords in the surrounding text. Ties go
// to neutral with the emoji's neutral label.
func resolveContext(r rune, entry lexicon.ContextEmoji, lowerText string) models.EmojiHit {
	positive, negative := 0, 0
	for _, w := range entry.PositiveContext {
		if strings.Contains(lowerText, w) {
			positive++
		}
	}
	for _, w := range entry.NegativeContext {
		if strings.Contains(lowerText, w) {
			negative++
		}
	}

	hit := models.EmojiHit{Glyph: string(r)}
	switch {
	case positive > negative:
		hit.Sentiment = "positive"
		hit.Score = entry.PositiveScore
		hit.Label = entry.PositiveLabel
	case negative > positive:
		hit.Sentiment = "negative"
		hit.Score = entry.NegativeScore
		hit.Label = entry.NegativeLabel
	default:
		hit.Sentiment = "neutral"
		hit.Label = entry.NeutralLabel
	}
	return hit
}

// Remove strips every emoji rune, variation selector and zero-width joiner
// from text.
func Remove(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if r == variationSelector || r == zeroWidthJoiner {
			continue
		}
		if IsEmoji(r) {
			continue
		}
		if lexicon.EmojiSentiments[r].Label != "" || lexicon.ContextEmojis[r].NeutralLabel != "" {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
