// Package sentiment scores canonical Darija text against keyword polarity
// sets and combines the result with the emoji signal into a final label,
// score and confidence.
package sentiment

import (
	"strings"

	"github.com/socialpulse/darijapulse/internal/lexicon"
	"github.com/socialpulse/darijapulse/internal/models"
	"github.com/socialpulse/darijapulse/internal/utils"
)

// Analyzer applies one fixed parameter set. It holds no mutable state and
// is safe for concurrent use.
type Analyzer struct {
	params Params
}

func NewAnalyzer(params Params) Analyzer {
	return Analyzer{params: params}
}

// ScoreText computes the lexical half of a sentiment decision. The base
// score is (positives − negatives) / (positives + negatives), scaled by the
// product of intensifier multipliers. A negator flips the sign at reduced
// magnitude rather than inverting outright: negation in this register
// softens more often than it reverses. Empty text yields the neutral
// zero record.
func (a Analyzer) ScoreText(cleanText string) models.TextAnalysis {
	analysis := models.TextAnalysis{
		PositiveWords: []string{},
		NegativeWords: []string{},
		Intensifier:   1.0,
	}
	if cleanText == "" {
		return analysis
	}

	words := strings.Fields(strings.ToLower(cleanText))
	for _, w := range words {
		switch {
		case lexicon.PositiveWords[w]:
			analysis.PositiveWords = append(analysis.PositiveWords, w)
		case lexicon.NegativeWords[w]:
			analysis.NegativeWords = append(analysis.NegativeWords, w)
		}
		if lexicon.Negators[w] {
			analysis.HasNegator = true
		}
		if m, ok := lexicon.Intensifiers[w]; ok {
			analysis.Intensifier *= m
		}
	}

	positives := len(analysis.PositiveWords)
	negatives := len(analysis.NegativeWords)
	var score float64
	if positives+negatives > 0 {
		score = float64(positives-negatives) / float64(positives+negatives)
	}

	score *= analysis.Intensifier
	if analysis.HasNegator && score != 0 {
		score = -score * a.params.NegationDamping
	}

	analysis.Score = utils.Round(utils.Clamp(score, -1, 1), 3)
	analysis.Intensifier = utils.Round(analysis.Intensifier, 2)
	return analysis
}
