package consumers

import (
	"context"
	"log/slog"

	"github.com/confluentinc/confluent-kafka-go/kafka"
	"github.com/socialpulse/darijapulse/config"
	"github.com/socialpulse/darijapulse/internal/clients/kafka_client"
	"github.com/socialpulse/darijapulse/internal/engine"
	"github.com/socialpulse/darijapulse/internal/models"
	"github.com/socialpulse/darijapulse/internal/utils"
)

// StartRawPostsConsumer normalizes and labels every post that lands on the
// raw topic, then republishes it to the labeled topic. The offset is only
// committed once the labeled post has been produced.
func StartRawPostsConsumer(ctx context.Context, consumer *kafka.Consumer) {
	iterator := kafka_client.NewKafkaMessageIterator(ctx, consumer)
	committer := kafka_client.NewCommitHandler(ctx, consumer)
	eng := engine.New(config.GetEngineParams())

	for {
		select {
		case <-ctx.Done():
			return
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

			labeled := eng.ProcessAndLabel(post)

			if err := kafka_client.PublishPost(kafka_client.KAFKA_TOPIC_LABELED_POSTS, labeled); err != nil {
				slog.Error("[RawPostsConsumer] Failed to publish labeled post",
					slog.String("post_id", labeled.ID),
					slog.String("error", err.Error()))
				continue
			}

			if err := committer.Commit(msg); err != nil {
				slog.Warn("[RawPostsConsumer] Failed to commit offset",
					slog.String("error", err.Error()))
			}
		}
	}
}
