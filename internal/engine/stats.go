package engine

import "github.com/socialpulse/darijapulse/internal/models"

// ComputeStats summarizes a labeled batch: per-language and per-label
// counts, how many posts carried emojis and how many need manual review.
func ComputeStats(posts []models.Post) models.BatchStats {
	stats := models.BatchStats{
		Total:      len(posts),
		ByLanguage: make(map[string]int),
		ByLabel:    make(map[string]int),
	}

	for _, post := range posts {
		if post.OriginalLang != "" {
			stats.ByLanguage[post.OriginalLang]++
		}
		if post.EmojiSentiment != nil && post.EmojiSentiment.EmojiCount > 0 {
			stats.WithEmojis++
		}
		if post.Sentiment != nil {
			stats.ByLabel[post.Sentiment.Label]++
			if post.Sentiment.NeedsReview {
				stats.NeedsReview++
			}
		}
	}
	return stats
}
