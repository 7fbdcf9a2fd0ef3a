package kafka_client

import "time"

const (
	KAFKA_TOPIC_RAW_POSTS     = "raw-posts"     // posts straight from the collectors, untouched
	KAFKA_TOPIC_LABELED_POSTS = "labeled-posts" // normalized posts with sentiment labels attached
	KAFKA_TOPIC_REVIEW_QUEUE  = "review-queue"  // low-confidence posts waiting for a human pass
)

const (
	BATCH_SIZE    = 50
	BATCH_TIMEOUT = 5 * time.Second
	MAX_RETRIES   = 5
	RETRY_DELAY   = 2 * time.Second
)
