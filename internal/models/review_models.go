package models

// ReviewItem is the flat record exported for manual annotation. ManualLabel
// and ReviewerNotes are left empty for the reviewer to fill in.
type ReviewItem struct {
	ID            string   `json:"id"`
	OriginalText  string   `json:"original_text"`
	CleanText     string   `json:"clean_text"`
	AutoLabel     string   `json:"auto_label"`
	AutoScore     float64  `json:"auto_score"`
	Confidence    float64  `json:"confidence"`
	PositiveWords []string `json:"positive_words"`
	NegativeWords []string `json:"negative_words"`
	VaderScore    float64  `json:"vader_score,omitempty"`
	VaderLabel    string   `json:"vader_label,omitempty"`
	ManualLabel   string   `json:"manual_label"`
	ReviewerNotes string   `json:"reviewer_notes"`
}

// BatchStats summarizes one labeling run over a dataset.
type BatchStats struct {
	Total       int            `json:"total"`
	ByLanguage  map[string]int `json:"by_language"`
	ByLabel     map[string]int `json:"by_label"`
	WithEmojis  int            `json:"with_emojis"`
	NeedsReview int            `json:"needs_review"`
}
