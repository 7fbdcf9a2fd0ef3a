package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/socialpulse/darijapulse/config"
	"github.com/socialpulse/darijapulse/internal/clients"
	"github.com/socialpulse/darijapulse/internal/clients/kafka_client"
	"github.com/socialpulse/darijapulse/internal/logging"
	"github.com/socialpulse/darijapulse/internal/producer"
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

	clients.InitValkey()
	defer clients.CloseValkey()

	fetchInterval, err := strconv.Atoi(os.Getenv("SOCIAL_FETCH_INTERVAL"))
	if err != nil {
		fetchInterval = 1800 // 30 minutes
	}

	fetchTicker := time.NewTicker(time.Duration(fetchInterval) * time.Second)
	defer fetchTicker.Stop()

	stopChan := make(chan os.Signal, 1)
	signal.Notify(stopChan, os.Interrupt, syscall.SIGTERM)

	// First round on startup, then on every tick.
	producer.FetchSocialPosts(ctx)

	for {
		select {
		case <-fetchTicker.C:
			producer.FetchSocialPosts(ctx)

		case <-stopChan:
			slog.Info("Shutting down producer gracefully...")
			cancel()
			return
		}
	}
}
