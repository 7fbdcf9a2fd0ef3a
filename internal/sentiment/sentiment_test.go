package sentiment

import (
	"math"
	"testing"

	"github.com/socialpulse/darijapulse/internal/models"
)

var analyzer = NewAnalyzer(DefaultParams())

func TestScoreTextBasic(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		score     float64
		positives int
		negatives int
	}{
		{"single positive", "el jaw behi", 1, 2, 0},
		{"single negative", "retard khayeb", -1, 0, 2},
		{"mixed", "behi ama ghali", 0, 1, 1},
		{"no keywords", "chouf el film ghodwa", 0, 0, 0},
		{"empty", "", 0, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := analyzer.ScoreText(tt.text)
			if got.Score != tt.score {
				t.Errorf("Score = %v, want %v", got.Score, tt.score)
			}
			if len(got.PositiveWords) != tt.positives || len(got.NegativeWords) != tt.negatives {
				t.Errorf("found %d/%d keywords, want %d/%d",
					len(got.PositiveWords), len(got.NegativeWords), tt.positives, tt.negatives)
			}
		})
	}
}

func TestScoreTextNegationDamping(t *testing.T) {
	plain := analyzer.ScoreText("behi")
	negated := analyzer.ScoreText("mouch behi")

	if !negated.HasNegator {
		t.Fatal("negator not detected")
	}
	want := -plain.Score * 0.8
	if math.Abs(negated.Score-want) > 1e-9 {
		t.Errorf("negated score = %v, want %v (0.8× partial inversion)", negated.Score, want)
	}
}

func TestScoreTextIntensifier(t *testing.T) {
	base := analyzer.ScoreText("ghali")
	boosted := analyzer.ScoreText("ghali barcha")

	if boosted.Intensifier != 1.5 {
		t.Fatalf("Intensifier = %v, want 1.5", boosted.Intensifier)
	}
	// -1 × 1.5 clamps back to -1.
	if boosted.Score != -1 {
		t.Errorf("Score = %v, want -1 after clamping", boosted.Score)
	}
	if base.Score != -1 {
		t.Errorf("base Score = %v", base.Score)
	}
}

func TestScoreTextAttenuator(t *testing.T) {
	got := analyzer.ScoreText("behi chwaya")
	if got.Intensifier != 0.7 {
		t.Fatalf("Intensifier = %v, want 0.7", got.Intensifier)
	}
	if got.Score != 0.7 {
		t.Errorf("Score = %v, want 0.7", got.Score)
	}
}

func TestScoreBounds(t *testing.T) {
	inputs := []string{
		"behi behia bnin bravo extra barcha aalekher",
		"khayeb ghali retard sale zahma barcha yesser",
		"mouch behi barcha", "", "jaw",
	}
	for _, in := range inputs {
		got := analyzer.ScoreText(in)
		if got.Score < -1 || got.Score > 1 {
			t.Errorf("ScoreText(%q).Score = %v out of range", in, got.Score)
		}
	}
}

func TestCombine(t *testing.T) {
	tests := []struct {
		name       string
		textScore  float64
		emojiScore float64
		want       float64
	}{
		{"emoji only", 0, 0.9, 0.9},
		{"text only", 0.5, 0, 0.5},
		{"weighted", 1, 0.5, 0.8},
		{"both zero", 0, 0, 0},
		{"disagreement", -1, 0.5, -0.4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := analyzer.Combine(tt.textScore, tt.emojiScore); got != tt.want {
				t.Errorf("Combine(%v, %v) = %v, want %v", tt.textScore, tt.emojiScore, got, tt.want)
			}
		})
	}
}

func TestLabelThresholds(t *testing.T) {
	tests := []struct {
		score float64
		want  string
	}{
		{0.2, "positive"},
		{0.19, "neutral"},
		{-0.2, "negative"},
		{-0.19, "neutral"},
		{0, "neutral"},
		{1, "positive"},
		{-1, "negative"},
	}
	for _, tt := range tests {
		if got := analyzer.Label(tt.score); got != tt.want {
			t.Errorf("Label(%v) = %q, want %q", tt.score, got, tt.want)
		}
	}
}

func TestConfidenceSteps(t *testing.T) {
	tests := []struct {
		name       string
		text       models.TextAnalysis
		emojiCount int
		emojiScore float64
		finalScore float64
		want       float64
	}{
		{
			name: "nothing found",
			want: 0.5,
		},
		{
			name:       "keywords emoji strong score agreeing",
			text:       models.TextAnalysis{Score: 0.8, PositiveWords: []string{"behi", "jaw", "bnin"}},
			emojiCount: 2,
			emojiScore: 0.9,
			finalScore: 0.84,
			want:       1,
		},
		{
			name:       "disagreement costs",
			text:       models.TextAnalysis{Score: -0.5, NegativeWords: []string{"ghali"}},
			emojiCount: 1,
			emojiScore: 0.9,
			finalScore: -0.06,
			want:       0.6, // 0.5 +0.1 keywords +0.1 emoji -0.1 disagreement
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := analyzer.Confidence(tt.text, tt.emojiCount, tt.emojiScore, tt.finalScore)
			if got != tt.want {
				t.Errorf("Confidence = %v, want %v", got, tt.want)
			}
			if got < 0 || got > 1 {
				t.Errorf("Confidence %v out of range", got)
			}
		})
	}
}

func TestAnalyzeEmojiOnlyPassThrough(t *testing.T) {
	es := &models.EmojiSentiment{
		Emojis:            []models.EmojiHit{{Glyph: "🔥", Sentiment: "positive", Score: 0.9, Label: "nar"}},
		EmojiCount:        1,
		TotalScore:        0.9,
		AvgScore:          0.9,
		DominantSentiment: "positive",
	}
	got := analyzer.Analyze("chouf el screenshot", es)
	if got.Score != 0.9 {
		t.Errorf("Score = %v, want pure emoji pass-through 0.9", got.Score)
	}
	if got.Label != "positive" {
		t.Errorf("Label = %q", got.Label)
	}
}

func TestAnalyzeEmptyInput(t *testing.T) {
	got := analyzer.Analyze("", nil)
	if got.Label != "neutral" || got.Score != 0 {
		t.Errorf("empty input: %+v", got)
	}
	if got.Confidence != 0.5 {
		t.Errorf("Confidence = %v, want 0.5 base", got.Confidence)
	}
	if !got.NeedsReview {
		t.Error("a bare 0.5-confidence record must be flagged for review")
	}
	if got.TextAnalysis.PositiveWords == nil || got.TextAnalysis.NegativeWords == nil {
		t.Error("word lists must be empty, not nil")
	}
}

func TestAnalyzeNeedsReviewThreshold(t *testing.T) {
	// Three keywords, two emojis, strong agreeing score: confidence 1.0,
	// well past the review cutoff.
	es := &models.EmojiSentiment{EmojiCount: 2, AvgScore: 0.95, TotalScore: 1.9, DominantSentiment: "positive"}
	got := analyzer.Analyze("behi bnin bravo", es)
	if got.NeedsReview {
		t.Errorf("high-confidence post flagged for review: %+v", got)
	}
}

func TestRemoveLinks(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"[jaw](https://example.com/x) behi", "jaw behi"},
		{"chouf https://t.co/abc tawa", "chouf  tawa"},
		{"plain text", "plain text"},
	}
	for _, tt := range tests {
		if got := RemoveLinks(tt.in); got != tt.want {
			t.Errorf("RemoveLinks(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCrossCheckLabels(t *testing.T) {
	score, label := analyzer.CrossCheck("This festival is wonderful, great ambiance!")
	if label != "positive" {
		t.Errorf("label = %q (score %v), want positive", label, score)
	}
	score, label = analyzer.CrossCheck("Terrible service, horrible delays, awful.")
	if label != "negative" {
		t.Errorf("label = %q (score %v), want negative", label, score)
	}
}
