package models

// Post is a social-media post moving through the pipeline. RawText is the
// ingested text; CleanText, OriginalLang, EmojiSentiment and
// SentimentAnalysis are derived once by the engine and not mutated after.
type Post struct {
	ID             string             `json:"id"`
	RawText        string             `json:"text"`
	Source         string             `json:"source,omitempty"`
	Author         string             `json:"author,omitempty"`
	CreatedUTC     float64            `json:"created_utc,omitempty"`
	CleanText      string             `json:"clean_text,omitempty"`
	OriginalLang   string             `json:"original_lang,omitempty"`
	NormalizedLang string             `json:"normalized_lang,omitempty"`
	EmojiSentiment *EmojiSentiment    `json:"emoji_sentiment,omitempty"`
	Sentiment      *SentimentAnalysis `json:"sentiment_analysis,omitempty"`
}

// EmojiHit is one emoji found in a post together with its resolved polarity.
type EmojiHit struct {
	Glyph     string  `json:"emoji"`
	Sentiment string  `json:"sentiment"`
	Score     float64 `json:"score"`
	Label     string  `json:"label_darija"`
}

// EmojiSentiment aggregates the emoji signal of one post. AvgScore is
// TotalScore/EmojiCount when any emoji were found, 0 otherwise.
type EmojiSentiment struct {
	Emojis            []EmojiHit `json:"emojis"`
	EmojiCount        int        `json:"emoji_count"`
	TotalScore        float64    `json:"total_score"`
	AvgScore          float64    `json:"avg_score"`
	DominantSentiment string     `json:"dominant_sentiment"`
}

// TextAnalysis is the lexical half of a sentiment decision.
type TextAnalysis struct {
	Score         float64  `json:"score"`
	PositiveWords []string `json:"positive_words"`
	NegativeWords []string `json:"negative_words"`
	HasNegator    bool     `json:"has_negator"`
	Intensifier   float64  `json:"intensifier"`
}

// SentimentAnalysis is the final label attached to a post.
type SentimentAnalysis struct {
	Label             string       `json:"label"`
	Score             float64      `json:"score"`
	Confidence        float64      `json:"confidence"`
	TextAnalysis      TextAnalysis `json:"text_analysis"`
	EmojiScore        float64      `json:"emoji_score"`
	NeedsReview       bool         `json:"needs_review"`
	ManuallyCorrected bool         `json:"manually_corrected,omitempty"`
	OriginalAutoLabel string       `json:"original_auto_label,omitempty"`
}
