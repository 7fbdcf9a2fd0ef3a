package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/socialpulse/darijapulse/internal/engine"
	"github.com/socialpulse/darijapulse/internal/sentiment"
)

func newTestServer() *Server {
	gin.SetMode(gin.TestMode)
	return NewServer(engine.New(sentiment.DefaultParams()))
}

func TestHealth(t *testing.T) {
	router := newTestServer().Router()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
}

func TestPredict(t *testing.T) {
	router := newTestServer().Router()

	body := strings.NewReader(`{"text": "behi barcha 🔥"}`)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/predict", body)
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var resp struct {
		CleanText string `json:"clean_text"`
		Sentiment struct {
			Label string `json:"label"`
		} `json:"sentiment_analysis"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Sentiment.Label != "positive" {
		t.Errorf("label = %q, want positive", resp.Sentiment.Label)
	}
	if !strings.Contains(resp.CleanText, "behi") {
		t.Errorf("clean_text = %q", resp.CleanText)
	}
}

func TestPredictMissingText(t *testing.T) {
	router := newTestServer().Router()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/predict", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestPredictBatch(t *testing.T) {
	router := newTestServer().Router()

	body := strings.NewReader(`{"posts": [{"id": "1", "text": "behi"}, {"id": "2", "text": "khayeb"}]}`)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/predict/batch", body)
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var resp struct {
		Posts []struct {
			ID        string `json:"id"`
			Sentiment struct {
				Label string `json:"label"`
			} `json:"sentiment_analysis"`
		} `json:"posts"`
		Stats struct {
			Total int `json:"total"`
		} `json:"stats"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Stats.Total != 2 || len(resp.Posts) != 2 {
		t.Fatalf("got %d posts, stats total %d", len(resp.Posts), resp.Stats.Total)
	}
	if resp.Posts[0].Sentiment.Label != "positive" || resp.Posts[1].Sentiment.Label != "negative" {
		t.Errorf("labels: %q, %q", resp.Posts[0].Sentiment.Label, resp.Posts[1].Sentiment.Label)
	}
}
