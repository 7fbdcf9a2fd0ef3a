package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/socialpulse/darijapulse/config"
	"github.com/socialpulse/darijapulse/internal/db"
	"github.com/socialpulse/darijapulse/internal/engine"
	"github.com/socialpulse/darijapulse/internal/logging"
	"github.com/socialpulse/darijapulse/internal/models"
	"github.com/socialpulse/darijapulse/internal/review"
	"github.com/socialpulse/darijapulse/internal/sentiment"
)

// The labeler runs the pipeline over a JSON dataset offline, without any of
// the streaming infrastructure. Four modes:
//
//	label      read raw posts, write labeled posts
//	review     read labeled posts, write a review sheet for annotators
//	review-db  scan DynamoDB for stored low-confidence posts, write a sheet
//	merge      read labeled posts plus a filled review sheet, write corrected posts
func main() {
	var (
		inputPath    = flag.String("input", "", "input JSON file (array of posts)")
		outputPath   = flag.String("output", "", "output JSON file")
		mode         = flag.String("mode", "label", "label, review, review-db or merge")
		reviewedPath = flag.String("reviewed", "", "filled review sheet (merge mode)")
		workers      = flag.Int("workers", 0, "worker count, 0 = one per CPU")
	)
	flag.Parse()

	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	config.LoadEnv(env)
	logging.InitLogger()

	if *outputPath == "" || (*inputPath == "" && *mode != "review-db") {
		fmt.Fprintln(os.Stderr, "usage: labeler -input posts.json -output out.json [-mode label|review|review-db|merge]")
		os.Exit(2)
	}

	if *workers == 0 {
		*workers = config.GetBatchWorkers()
	}

	params := config.GetEngineParams()
	var err error
	switch *mode {
	case "label":
		err = runLabel(*inputPath, *outputPath, *workers, params)
	case "review":
		err = runReview(*inputPath, *outputPath, params)
	case "review-db":
		err = runReviewFromDB(*outputPath, params)
	case "merge":
		err = runMerge(*inputPath, *reviewedPath, *outputPath)
	default:
		err = fmt.Errorf("unknown mode %q", *mode)
	}
	if err != nil {
		slog.Error("[Labeler] Run failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func runLabel(inputPath, outputPath string, workers int, params sentiment.Params) error {
	var posts []models.Post
	if err := readJSON(inputPath, &posts); err != nil {
		return err
	}

	eng := engine.New(params)
	labeled := eng.ProcessBatch(context.Background(), posts, workers)

	stats := engine.ComputeStats(labeled)
	slog.Info("[Labeler] Dataset labeled",
		slog.Int("total", stats.Total),
		slog.Int("with_emojis", stats.WithEmojis),
		slog.Int("needs_review", stats.NeedsReview),
		slog.Any("by_label", stats.ByLabel),
		slog.Any("by_language", stats.ByLanguage))

	return writeJSON(outputPath, labeled)
}

func runReview(inputPath, outputPath string, params sentiment.Params) error {
	var posts []models.Post
	if err := readJSON(inputPath, &posts); err != nil {
		return err
	}

	analyzer := sentiment.NewAnalyzer(params)
	items := review.BuildItems(posts, config.GetReviewBatchLimit(), analyzer)

	slog.Info("[Labeler] Review sheet built",
		slog.Int("items", len(items)))

	return writeJSON(outputPath, items)
}

func runReviewFromDB(outputPath string, params sentiment.Params) error {
	db.InitDynamoDB()
	posts, err := db.GetPostsForReview(context.Background())
	if err != nil {
		return err
	}

	analyzer := sentiment.NewAnalyzer(params)
	items := review.BuildItems(posts, config.GetReviewBatchLimit(), analyzer)

	slog.Info("[Labeler] Review sheet built from stored posts",
		slog.Int("candidates", len(posts)),
		slog.Int("items", len(items)))

	return writeJSON(outputPath, items)
}

func runMerge(inputPath, reviewedPath, outputPath string) error {
	if reviewedPath == "" {
		return fmt.Errorf("merge mode needs -reviewed")
	}

	var posts []models.Post
	if err := readJSON(inputPath, &posts); err != nil {
		return err
	}
	var reviewed []models.ReviewItem
	if err := readJSON(reviewedPath, &reviewed); err != nil {
		return err
	}

	merged, corrections := review.MergeManualLabels(posts, reviewed)
	slog.Info("[Labeler] Manual labels merged",
		slog.Int("corrections", corrections))

	return writeJSON(outputPath, merged)
}

func readJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
