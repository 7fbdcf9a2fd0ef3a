// Package engine ties the normalizer, emoji extractor and sentiment scorer
// into the per-post processing and labeling operations, plus a concurrent
// batch driver.
package engine

import (
	"github.com/socialpulse/darijapulse/internal/emoji"
	"github.com/socialpulse/darijapulse/internal/models"
	"github.com/socialpulse/darijapulse/internal/normalizer"
	"github.com/socialpulse/darijapulse/internal/sentiment"
)

type Engine struct {
	analyzer sentiment.Analyzer
}

func New(params sentiment.Params) *Engine {
	return &Engine{analyzer: sentiment.NewAnalyzer(params)}
}

// ProcessPost derives the canonical text, language guess and emoji signal
// for one post. A missing text field is treated as the empty string and
// still yields a fully populated record.
func (e *Engine) ProcessPost(post models.Post) models.Post {
	text := normalizer.CleanSpecialChars(post.RawText)

	emojiSentiment := emoji.Extract(text)
	post.EmojiSentiment = &emojiSentiment
	post.OriginalLang = normalizer.DetectLanguage(text)
	post.CleanText = normalizer.Normalize(text)
	post.NormalizedLang = "darija"
	return post
}

// LabelPost attaches the sentiment decision to an already-processed post.
func (e *Engine) LabelPost(post models.Post) models.Post {
	analysis := e.analyzer.Analyze(post.CleanText, post.EmojiSentiment)
	post.Sentiment = &analysis
	return post
}

// ProcessAndLabel runs both stages on a raw post.
func (e *Engine) ProcessAndLabel(post models.Post) models.Post {
	return e.LabelPost(e.ProcessPost(post))
}
