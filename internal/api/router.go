package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/LJTian/ArticleInsight/internal/article"
	"github.com/LJTian/ArticleInsight/internal/logging"
	"github.com/LJTian/ArticleInsight/internal/processor"
	"github.com/LJTian/ArticleInsight/internal/scoring"
	"github.com/LJTian/ArticleInsight/internal/storage"
	"github.com/gin-gonic/gin"
)

// Store API 依赖的存储能力
type Store interface {
	SaveArticles(ctx context.Context, items []processor.ArticleInsight) error
	SaveReport(ctx context.Context, r *processor.Report) error
	ListArticles(ctx context.Context, q storage.ListQuery) ([]storage.Article, error)
	LatestReport(ctx context.Context) (*processor.Report, error)
}

// maxBatch 单次分析请求允许的文章数
const maxBatch = 1000

type Server struct {
	store    Store
	analyzer *processor.Analyzer
	scorer   *scoring.Scorer
}

func NewServer(store Store, analyzer *processor.Analyzer, scorer *scoring.Scorer) *Server {
	return &Server{store: store, analyzer: analyzer, scorer: scorer}
}

func (s *Server) RegisterRoutes(r *gin.Engine) {
	r.GET("/health", s.health)

	v1 := r.Group("/api/v1")
	{
		v1.POST("/analyze", s.analyze)
		v1.POST("/hot-index", s.hotIndex)
		v1.GET("/articles", s.listArticles)
		v1.GET("/reports/latest", s.latestReport)
	}
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

type analyzeRequest struct {
	Articles []article.Record `json:"articles"`
	// 为 true 时仅返回结果，不落库
	DryRun bool `json:"dryRun"`
}

func (s *Server) analyze(c *gin.Context) {
	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}
	if len(req.Articles) > maxBatch {
		badRequest(c, "too many articles, max "+strconv.Itoa(maxBatch))
		return
	}

	ctx := c.Request.Context()
	report, err := s.analyzer.Analyze(ctx, req.Articles)
	if err != nil {
		logging.Error("analyze failed", "err", err)
		internalError(c)
		return
	}

	if !req.DryRun && len(report.Articles) > 0 {
		if err := s.store.SaveArticles(ctx, report.Articles); err != nil {
			logging.Error("save articles failed", "report", report.ID, "err", err)
			internalError(c)
			return
		}
		if err := s.store.SaveReport(ctx, report); err != nil {
			logging.Error("save report failed", "report", report.ID, "err", err)
			internalError(c)
			return
		}
	}

	ok(c, report)
}

// hotIndex 只计算热度，不提取关键词、不落库
func (s *Server) hotIndex(c *gin.Context) {
	var rec article.Record
	if err := c.ShouldBindJSON(&rec); err != nil {
		badRequest(c, "invalid request body")
		return
	}
	if rec.Metrics == nil {
		badRequest(c, "metrics is required")
		return
	}
	ok(c, s.scorer.HotIndex(rec, *rec.Metrics))
}

func (s *Server) listArticles(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil || limit <= 0 {
		limit = 20
	}
	q := storage.ListQuery{
		Account: c.Query("account"),
		Sort:    c.DefaultQuery("sort", storage.SortLatest),
		Limit:   limit,
		Date:    c.Query("date"),
	}

	rows, err := s.store.ListArticles(c.Request.Context(), q)
	if err != nil {
		logging.Error("list articles failed", "err", err)
		internalError(c)
		return
	}
	// 与 /analyze 返回的文章结构保持一致
	items := make([]processor.ArticleInsight, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.Insight())
	}
	ok(c, items)
}

func (s *Server) latestReport(c *gin.Context) {
	r, err := s.store.LatestReport(c.Request.Context())
	if errors.Is(err, storage.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{
			"code":    "not_found",
			"message": "no report yet",
		})
		return
	}
	if err != nil {
		logging.Error("load latest report failed", "err", err)
		internalError(c)
		return
	}
	ok(c, r)
}

func ok(c *gin.Context, data any) {
	c.JSON(http.StatusOK, gin.H{
		"code":    "ok",
		"message": "success",
		"data":    data,
	})
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{
		"code":    "bad_request",
		"message": msg,
	})
}

func internalError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, gin.H{
		"code":    "internal_error",
		"message": "internal server error",
	})
}
