package emoji

import (
	"strings"
	"testing"
)

func TestExtractFixedPolarity(t *testing.T) {
	got := Extract("jaw behi 🔥")
	if got.EmojiCount != 1 {
		t.Fatalf("EmojiCount = %d, want 1", got.EmojiCount)
	}
	hit := got.Emojis[0]
	if hit.Score != 0.9 || hit.Sentiment != "positive" || hit.Label != "nar" {
		t.Errorf("unexpected hit: %+v", hit)
	}
	if got.AvgScore != 0.9 || got.DominantSentiment != "positive" {
		t.Errorf("aggregate wrong: %+v", got)
	}
}

func TestExtractNoEmojis(t *testing.T) {
	got := Extract("jaw behi barcha")
	if got.EmojiCount != 0 || got.TotalScore != 0 || got.AvgScore != 0 {
		t.Errorf("expected zero signal, got %+v", got)
	}
	if got.DominantSentiment != "neutral" {
		t.Errorf("DominantSentiment = %q, want neutral", got.DominantSentiment)
	}
}

func TestExtractContextDependent(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		sentiment string
		label     string
	}{
		{"positive context", "festival ambiance 🔊", "positive", "ambiance"},
		{"negative context", "bruit mochkla 🔊", "negative", "sot_ali"},
		{"no context", "🔊", "neutral", "sot"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Extract(tt.text)
			if got.EmojiCount != 1 {
				t.Fatalf("EmojiCount = %d, want 1", got.EmojiCount)
			}
			hit := got.Emojis[0]
			if hit.Sentiment != tt.sentiment || hit.Label != tt.label {
				t.Errorf("hit = %+v, want sentiment %q label %q", hit, tt.sentiment, tt.label)
			}
		})
	}
}

func TestExtractUnknownEmojiNeutral(t *testing.T) {
	// An emoji outside the lexicon still counts toward emoji_count with a
	// zero score.
	got := Extract("chouf 🪀")
	if got.EmojiCount != 1 {
		t.Fatalf("EmojiCount = %d, want 1", got.EmojiCount)
	}
	hit := got.Emojis[0]
	if hit.Score != 0 || hit.Sentiment != "neutral" || hit.Label != "emoji" {
		t.Errorf("unexpected hit: %+v", hit)
	}
}

func TestExtractAggregation(t *testing.T) {
	got := Extract("😀😀")
	if got.EmojiCount != 2 || got.TotalScore != 2 || got.AvgScore != 1 {
		t.Errorf("aggregate wrong: %+v", got)
	}
	if got.DominantSentiment != "positive" {
		t.Errorf("DominantSentiment = %q", got.DominantSentiment)
	}
}

func TestExtractVariationSelector(t *testing.T) {
	// ❤️ carries U+FE0F; it must resolve to the bare heart entry and the
	// selector itself must not count as an emoji.
	got := Extract("nheb ❤️")
	if got.EmojiCount != 1 {
		t.Fatalf("EmojiCount = %d, want 1", got.EmojiCount)
	}
	if got.Emojis[0].Label != "hob" {
		t.Errorf("label = %q, want hob", got.Emojis[0].Label)
	}
}

func TestRemove(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"jaw behi 🔥", "jaw behi "},
		{"❤️ nheb", " nheb"},
		{"no emojis", "no emojis"},
		{"🔊🚧", ""},
	}
	for _, tt := range tests {
		if got := Remove(tt.in); got != tt.want {
			t.Errorf("Remove(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestAvgScoreInvariant(t *testing.T) {
	got := Extract("😀 🔥 👍")
	if got.EmojiCount == 0 {
		t.Fatal("no emojis extracted")
	}
	if got.AvgScore < -1 || got.AvgScore > 1 {
		t.Errorf("AvgScore %v out of range", got.AvgScore)
	}
	if !strings.Contains("positive negative neutral", got.DominantSentiment) {
		t.Errorf("bad dominant sentiment %q", got.DominantSentiment)
	}
}
