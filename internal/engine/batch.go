package engine

import (
	"context"
	"log/slog"
	"runtime"
	"sync"

	"github.com/socialpulse/darijapulse/internal/models"
)

// ProcessBatch runs ProcessAndLabel over every post on a worker pool.
// Posts are independent and the lexicon tables are read-only, so workers
// share nothing; output order matches input order. workers <= 0 selects
// one worker per CPU. A canceled context stops feeding work; posts already
// picked up still finish.
func (e *Engine) ProcessBatch(ctx context.Context, posts []models.Post, workers int) []models.Post {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(posts) {
		workers = len(posts)
	}
	if len(posts) == 0 {
		return nil
	}

	results := make([]models.Post, len(posts))
	jobs := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i] = e.ProcessAndLabel(posts[i])
			}
		}()
	}

feed:
	for i := range posts {
		select {
		case jobs <- i:
		case <-ctx.Done():
			slog.Warn("[Engine] Batch canceled",
				slog.Int("submitted", i),
				slog.Int("total", len(posts)))
			break feed
		}
	}
	close(jobs)
	wg.Wait()

	if ctx.Err() != nil {
		return results[:0]
	}

	slog.Info("[Engine] Batch processed",
		slog.Int("posts", len(posts)),
		slog.Int("workers", workers))
	return results
}
