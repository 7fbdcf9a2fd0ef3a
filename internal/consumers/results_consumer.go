package consumers

import (
	"context"
	"log/slog"
	"time"

	"github.com/confluentinc/confluent-kafka-go/kafka"
	"github.com/socialpulse/darijapulse/internal/clients/kafka_client"
	"github.com/socialpulse/darijapulse/internal/db"
	"github.com/socialpulse/darijapulse/internal/models"
	"github.com/socialpulse/darijapulse/internal/utils"
)

var insertBuffer = utils.NewBatchBuffer[models.Post]()

// StartLabeledPostsConsumer persists labeled posts to DynamoDB in batches
// and forwards low-confidence ones to the review queue.
func StartLabeledPostsConsumer(ctx context.Context, consumer *kafka.Consumer) {
	iterator := kafka_client.NewKafkaMessageIterator(ctx, consumer)
	committer := kafka_client.NewCommitHandler(ctx, consumer)

	ticker := time.NewTicker(utils.BATCH_TIMEOUT)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			storeLabeledPosts(ctx, committer)
		default:
			msg, err := iterator.Next()
			if err != nil {
				utils.HandleConsumerError(err)
				continue
			}

			var post models.Post
			if err := utils.DeserializeFromJSON(msg.Value, &post); err != nil {
				utils.HandleConsumerError(err)
				continue
			}

			utils.TrackMessage(post.ID, msg)
			insertBuffer.Add(post)
			if insertBuffer.Size() >= utils.BATCH_SIZE {
				storeLabeledPosts(ctx, committer)
			}
		}
	}
}

func storeLabeledPosts(ctx context.Context, committer *kafka_client.KafkaCommitHandler) {
	var insertErr error
	batch := insertBuffer.GetAndClear()
	if len(batch) == 0 {
		return
	}
	slog.Info("[LabeledPostsConsumer] Processing batch",
		slog.Int("batch_size", len(batch)))

	for i := 0; i < 3; i++ {
		insertErr = db.StoreLabeledPosts(ctx, batch)
		if insertErr == nil {
			break
		}
		slog.Error("[LabeledPostsConsumer] Failed to write posts to DB",
			slog.String("error", insertErr.Error()),
			slog.Int("attempt", i+1))
	}

	for _, post := range batch {
		if post.Sentiment != nil && post.Sentiment.NeedsReview {
			if err := kafka_client.PublishPost(kafka_client.KAFKA_TOPIC_REVIEW_QUEUE, post); err != nil {
				slog.Warn("[LabeledPostsConsumer] Failed to queue post for review",
					slog.String("post_id", post.ID),
					slog.String("error", err.Error()))
			}
		}

		msg, found := utils.GetMessageForPost(post.ID)
		if found {
			if err := committer.Commit(msg); err != nil {
				slog.Warn("[LabeledPostsConsumer] Failed to commit offset",
					slog.String("error", err.Error()))
			}
		}
	}
}
