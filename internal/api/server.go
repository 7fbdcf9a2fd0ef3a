package api

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/socialpulse/darijapulse/internal/engine"
	"github.com/socialpulse/darijapulse/internal/models"
)

type PredictRequest struct {
	Text string `json:"text" binding:"required"`
}

type BatchPredictRequest struct {
	Posts []models.Post `json:"posts" binding:"required"`
}

// Server exposes the labeling engine over HTTP for ad-hoc calls and
// integration with the annotation UI.
type Server struct {
	engine *engine.Engine
}

func NewServer(eng *engine.Engine) *Server {
	return &Server{engine: eng}
}

func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/health", s.handleHealth)
	r.POST("/predict", s.handlePredict)
	r.POST("/predict/batch", s.handlePredictBatch)

	return r
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) handlePredict(c *gin.Context) {
	var req PredictRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	post := s.engine.ProcessAndLabel(models.Post{RawText: req.Text})

	c.JSON(http.StatusOK, gin.H{
		"clean_text":         post.CleanText,
		"original_lang":      post.OriginalLang,
		"emoji_sentiment":    post.EmojiSentiment,
		"sentiment_analysis": post.Sentiment,
	})
}

func (s *Server) handlePredictBatch(c *gin.Context) {
	var req BatchPredictRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	labeled := s.engine.ProcessBatch(c.Request.Context(), req.Posts, 0)
	stats := engine.ComputeStats(labeled)

	slog.Info("[API] Batch labeled",
		slog.Int("total", stats.Total),
		slog.Int("needs_review", stats.NeedsReview))

	c.JSON(http.StatusOK, gin.H{
		"posts": labeled,
		"stats": stats,
	})
}
