package producer

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/socialpulse/darijapulse/config"
	"github.com/socialpulse/darijapulse/internal/clients"
	"github.com/socialpulse/darijapulse/internal/clients/kafka_client"
	"github.com/socialpulse/darijapulse/internal/models"
	"github.com/socialpulse/darijapulse/internal/utils"
)

// FetchSocialPosts runs one collection round: every configured query is
// searched, new posts are deduped against Valkey and published raw.
func FetchSocialPosts(ctx context.Context) {
	slog.Info("[Producer] Fetching social posts for configured queries...")

	queries := splitQueries(config.GetSocialQueries())
	if len(queries) == 0 {
		slog.Warn("[Producer] No queries configured. Skipping fetch.")
		return
	}

	for _, query := range queries {
		select {
		case <-ctx.Done():
			slog.Warn("[Producer] Context cancelled, stopping fetch",
				slog.String("query", query))
			return
		default:
		}

		if err := fetchAndProcessQuery(ctx, query); err != nil {
			slog.Error("[Producer] Failed processing query",
				slog.String("query", query),
				slog.String("error", err.Error()))
		}
	}

	slog.Info("[Producer] Successfully fetched & sent social posts to Kafka!")
}

func splitQueries(raw string) []string {
	var queries []string
	for _, q := range strings.Split(raw, ",") {
		if q = strings.TrimSpace(q); q != "" {
			queries = append(queries, q)
		}
	}
	return queries
}

func fetchAndProcessQuery(ctx context.Context, query string) error {
	data, err := fetchWithRetries(ctx, query)
	if err != nil {
		return fmt.Errorf("fetch failed after retries: %w", err)
	}

	var response models.SocialSearchResponse
	if err := utils.DeserializeFromJSON(data, &response); err != nil {
		return fmt.Errorf("bad search response: %w", err)
	}

	processPosts(ctx, query, response.Data)
	return nil
}

func fetchWithRetries(ctx context.Context, query string) ([]byte, error) {
	var data []byte
	var err error

	for attempt := 1; attempt <= 3; attempt++ {
		data, err = clients.GetSocialClient().SearchRecentPosts(query)
		if err == nil {
			return data, nil
		}

		slog.Warn("[Producer] Retrying social fetch",
			slog.String("query", query),
			slog.Int("attempt", attempt),
			slog.String("error", err.Error()))

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(2 * time.Second):
		}
	}

	return nil, err
}

func processPosts(ctx context.Context, query string, posts []models.SocialPostData) {
	for _, post := range posts {
		select {
		case <-ctx.Done():
			slog.Warn("[Producer] Context cancelled during post processing")
			return
		default:
		}

		dedupeKey := fmt.Sprintf("%s:%s", query, post.ID)

		if post.Text == "" || clients.GetValkeyClient().IsPostProcessed(ctx, "social", dedupeKey) {
			continue
		}

		raw := socialPostToRaw(post)
		if err := kafka_client.PublishPost(kafka_client.KAFKA_TOPIC_RAW_POSTS, raw); err != nil {
			slog.Warn("[Producer] Failed to publish to Kafka",
				slog.String("post_id", raw.ID),
				slog.String("error", err.Error()))
			continue
		}

		if err := clients.GetValkeyClient().MarkProcessed(ctx, "social", dedupeKey); err != nil {
			slog.Warn("[Producer] Error marking post as processed",
				slog.String("post_id", post.ID),
				slog.String("error", err.Error()))
		}
	}
}

func socialPostToRaw(p models.SocialPostData) models.Post {
	id := p.ID
	if id == "" {
		id = uuid.NewString()
	}

	var createdUTC float64
	if ts, err := time.Parse(time.RFC3339, p.CreatedAt); err == nil {
		createdUTC = float64(ts.Unix())
	}

	return models.Post{
		ID:         id,
		RawText:    p.Text,
		Source:     "social",
		Author:     p.AuthorID,
		CreatedUTC: createdUTC,
	}
}
