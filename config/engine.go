package config

import (
	"os"
	"strconv"

	"github.com/socialpulse/darijapulse/internal/sentiment"
)

func getEnv(key, defaultValue string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value, ok := os.LookupEnv(key); ok {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value, ok := os.LookupEnv(key); ok {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

// GetEngineParams reads the scoring parameters from the environment,
// falling back to the library defaults. The thresholds are tunable on
// purpose: they are empirical constants, not derived values.
func GetEngineParams() sentiment.Params {
	p := sentiment.DefaultParams()
	p.TextWeight = getEnvFloat("SENTIMENT_TEXT_WEIGHT", p.TextWeight)
	p.EmojiWeight = getEnvFloat("SENTIMENT_EMOJI_WEIGHT", p.EmojiWeight)
	p.PositiveThreshold = getEnvFloat("SENTIMENT_POSITIVE_THRESHOLD", p.PositiveThreshold)
	p.NegativeThreshold = getEnvFloat("SENTIMENT_NEGATIVE_THRESHOLD", p.NegativeThreshold)
	p.NegationDamping = getEnvFloat("SENTIMENT_NEGATION_DAMPING", p.NegationDamping)
	p.ReviewThreshold = getEnvFloat("SENTIMENT_REVIEW_THRESHOLD", p.ReviewThreshold)
	return p
}

// GetReviewBatchLimit caps how many low-confidence posts go out for manual
// annotation in one export.
func GetReviewBatchLimit() int {
	return getEnvInt("REVIEW_BATCH_LIMIT", 100)
}

// GetBatchWorkers sets the worker-pool size for dataset processing;
// 0 selects one worker per CPU.
func GetBatchWorkers() int {
	return getEnvInt("BATCH_WORKERS", 0)
}

// GetSocialQueries lists the search queries the producer polls for.
func GetSocialQueries() string {
	return getEnv("SOCIAL_QUERIES", "monastir,festival monastir,steg monastir")
}
