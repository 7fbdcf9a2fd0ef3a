package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/socialpulse/darijapulse/config"
	"github.com/socialpulse/darijapulse/internal/clients/kafka_client"
	"github.com/socialpulse/darijapulse/internal/consumers"
	"github.com/socialpulse/darijapulse/internal/db"
	"github.com/socialpulse/darijapulse/internal/logging"
)

func main() {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	config.LoadEnv(env)
	logging.InitLogger()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	cfg := kafka_client.GetKafkaConfig()

	for {
		err := kafka_client.InitKafkaProducer(cfg)
		if err == nil {
			break
		}

		slog.Warn("Kafka init failed, retrying...", slog.String("error", err.Error()))
		time.Sleep(5 * time.Second)
	}
	defer kafka_client.CloseKafkaProducer()

	db.InitDynamoDB()

	kafka_client.RegisterConsumer(kafka_client.KAFKA_TOPIC_RAW_POSTS, consumers.StartRawPostsConsumer)
	kafka_client.RegisterConsumer(kafka_client.KAFKA_TOPIC_LABELED_POSTS, consumers.StartLabeledPostsConsumer)

	if err := kafka_client.StartConsumer(ctx); err != nil {
		slog.Error("[Main] Failed to start consumer",
			slog.String("error", err.Error()))
	}
}
