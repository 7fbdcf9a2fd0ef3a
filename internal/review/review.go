// Package review selects low-confidence posts for manual annotation and
// merges corrected labels back into a labeled dataset.
package review

import (
	"log/slog"
	"sort"

	"github.com/socialpulse/darijapulse/internal/models"
	"github.com/socialpulse/darijapulse/internal/sentiment"
)

// SelectForReview returns the posts flagged needs_review, sorted ascending
// by confidence so the least certain come first, capped at maxPosts.
// maxPosts <= 0 means no cap.
func SelectForReview(posts []models.Post, maxPosts int) []models.Post {
	var selected []models.Post
	for _, post := range posts {
		if post.Sentiment != nil && post.Sentiment.NeedsReview {
			selected = append(selected, post)
		}
	}

	sort.SliceStable(selected, func(i, j int) bool {
		return selected[i].Sentiment.Confidence < selected[j].Sentiment.Confidence
	})

	if maxPosts > 0 && len(selected) > maxPosts {
		selected = selected[:maxPosts]
	}
	return selected
}

// BuildItems flattens review candidates into the annotation format, with a
// VADER second opinion attached. The manual_label and reviewer_notes fields
// are left empty for the annotator.
func BuildItems(posts []models.Post, maxPosts int, analyzer sentiment.Analyzer) []models.ReviewItem {
	selected := SelectForReview(posts, maxPosts)

	items := make([]models.ReviewItem, 0, len(selected))
	for _, post := range selected {
		vaderScore, vaderLabel := analyzer.CrossCheck(post.RawText)
		items = append(items, models.ReviewItem{
			ID:            post.ID,
			OriginalText:  post.RawText,
			CleanText:     post.CleanText,
			AutoLabel:     post.Sentiment.Label,
			AutoScore:     post.Sentiment.Score,
			Confidence:    post.Sentiment.Confidence,
			PositiveWords: post.Sentiment.TextAnalysis.PositiveWords,
			NegativeWords: post.Sentiment.TextAnalysis.NegativeWords,
			VaderScore:    vaderScore,
			VaderLabel:    vaderLabel,
		})
	}

	slog.Info("[Review] Built review items",
		slog.Int("candidates", len(posts)),
		slog.Int("selected", len(items)))
	return items
}

// MergeManualLabels applies reviewed labels back onto the dataset, keyed by
// post ID. Only items with a filled manual_label count; a correction that
// changes the label preserves the automatic one under original_auto_label
// and sets the manually_corrected flag. Returns the corrected dataset and
// the number of labels changed.
func MergeManualLabels(posts []models.Post, reviewed []models.ReviewItem) ([]models.Post, int) {
	manual := make(map[string]string, len(reviewed))
	for _, item := range reviewed {
		if item.ManualLabel != "" {
			manual[item.ID] = item.ManualLabel
		}
	}

	corrections := 0
	out := make([]models.Post, len(posts))
	for i, post := range posts {
		if newLabel, ok := manual[post.ID]; ok && post.Sentiment != nil && post.Sentiment.Label != newLabel {
			updated := *post.Sentiment
			updated.OriginalAutoLabel = updated.Label
			updated.Label = newLabel
			updated.ManuallyCorrected = true
			post.Sentiment = &updated
			corrections++
		}
		out[i] = post
	}

	slog.Info("[Review] Merged manual labels",
		slog.Int("reviewed", len(reviewed)),
		slog.Int("corrections", corrections))
	return out, corrections
}
