package engine

import (
	"context"
	"strings"
	"testing"

	"github.com/socialpulse/darijapulse/internal/models"
	"github.com/socialpulse/darijapulse/internal/sentiment"
)

func newTestEngine() *Engine {
	return New(sentiment.DefaultParams())
}

func TestProcessAndLabelArabicScenario(t *testing.T) {
	e := newTestEngine()
	got := e.ProcessAndLabel(models.Post{ID: "1", RawText: "الجو رائع اليوم في المنستير 😍"})

	for _, token := range []string{"jaw", "heyel", "lyoum", "mestir"} {
		if !strings.Contains(got.CleanText, token) {
			t.Errorf("clean_text %q missing %q", got.CleanText, token)
		}
	}
	if got.OriginalLang != "ar" {
		t.Errorf("OriginalLang = %q, want ar", got.OriginalLang)
	}
	if got.EmojiSentiment == nil || got.EmojiSentiment.DominantSentiment != "positive" {
		t.Errorf("emoji sentiment: %+v", got.EmojiSentiment)
	}
	if got.Sentiment == nil || got.Sentiment.Label != "positive" {
		t.Errorf("sentiment: %+v", got.Sentiment)
	}
}

func TestProcessPostEmptyText(t *testing.T) {
	e := newTestEngine()
	got := e.ProcessAndLabel(models.Post{ID: "empty"})

	if got.CleanText != "" {
		t.Errorf("CleanText = %q", got.CleanText)
	}
	if got.EmojiSentiment == nil || got.EmojiSentiment.EmojiCount != 0 {
		t.Errorf("emoji sentiment: %+v", got.EmojiSentiment)
	}
	if got.Sentiment == nil || got.Sentiment.Label != "neutral" {
		t.Errorf("sentiment: %+v", got.Sentiment)
	}
	if !got.Sentiment.NeedsReview {
		t.Error("empty post must be flagged for review")
	}
}

func TestProcessPostWriteOnceFields(t *testing.T) {
	e := newTestEngine()
	post := models.Post{ID: "1", RawText: "behi barcha"}
	got := e.ProcessPost(post)

	if got.RawText != post.RawText {
		t.Error("raw text mutated")
	}
	if got.NormalizedLang != "darija" {
		t.Errorf("NormalizedLang = %q", got.NormalizedLang)
	}
}

func TestProcessBatchPreservesOrder(t *testing.T) {
	e := newTestEngine()
	posts := []models.Post{
		{ID: "a", RawText: "behi barcha 🔥"},
		{ID: "b", RawText: "retard khayeb"},
		{ID: "c", RawText: "chouf el film"},
		{ID: "d", RawText: ""},
	}
	got := e.ProcessBatch(context.Background(), posts, 3)

	if len(got) != len(posts) {
		t.Fatalf("got %d results, want %d", len(got), len(posts))
	}
	for i, post := range got {
		if post.ID != posts[i].ID {
			t.Errorf("result %d has ID %q, want %q", i, post.ID, posts[i].ID)
		}
		if post.Sentiment == nil {
			t.Errorf("post %q not labeled", post.ID)
		}
	}
	if got[0].Sentiment.Label != "positive" || got[1].Sentiment.Label != "negative" {
		t.Errorf("labels: %q, %q", got[0].Sentiment.Label, got[1].Sentiment.Label)
	}
}

func TestProcessBatchCanceled(t *testing.T) {
	e := newTestEngine()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	got := e.ProcessBatch(ctx, []models.Post{{ID: "a", RawText: "behi"}}, 1)
	if len(got) != 0 {
		t.Errorf("canceled batch returned %d results", len(got))
	}
}

func TestComputeStats(t *testing.T) {
	e := newTestEngine()
	posts := e.ProcessBatch(context.Background(), []models.Post{
		{ID: "1", RawText: "الجو رائع 😍"},
		{ID: "2", RawText: "retard khayeb barcha"},
		{ID: "3", RawText: "chouf ghodwa"},
	}, 2)

	stats := ComputeStats(posts)
	if stats.Total != 3 {
		t.Fatalf("Total = %d", stats.Total)
	}
	if stats.ByLanguage["ar"] != 1 {
		t.Errorf("ByLanguage = %v", stats.ByLanguage)
	}
	if stats.WithEmojis != 1 {
		t.Errorf("WithEmojis = %d", stats.WithEmojis)
	}
	if stats.ByLabel["positive"] < 1 || stats.ByLabel["negative"] < 1 {
		t.Errorf("ByLabel = %v", stats.ByLabel)
	}
}
