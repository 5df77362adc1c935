package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/LJTian/ArticleInsight/internal/article"
	"github.com/LJTian/ArticleInsight/internal/logging"
	"github.com/LJTian/ArticleInsight/internal/processor"
	"github.com/redis/go-redis/v9"
	"gorm.io/datatypes"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrNotFound 尚无任何报告
var ErrNotFound = errors.New("storage: not found")

// 排序方式
const (
	SortLatest = "latest"
	SortHot    = "hot"
)

// ListQuery 文章列表查询条件
// Account: 公众号，可为空
// Sort: latest(默认) / hot
// Date: 可选，格式 2006-01-02
type ListQuery struct {
	Account string
	Sort    string
	Limit   int
	Date    string
}

// Normalize 补齐默认值
func (q ListQuery) Normalize() ListQuery {
	if q.Limit <= 0 || q.Limit > 1000 {
		q.Limit = 20
	}
	if q.Sort != SortHot {
		q.Sort = SortLatest
	}
	return q
}

type Store struct {
	DB    *gorm.DB
	Redis *redis.Client
	cache *ReportCache
}

func NewStore(dsn, redisAddr string) (*Store, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}

	if err := db.AutoMigrate(&Article{}, &Report{}); err != nil {
		return nil, fmt.Errorf("auto migrate: %w", err)
	}

	rdb := redis.NewClient(&redis.Options{
		Addr: redisAddr,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		logging.Warn("redis ping failed", "addr", redisAddr, "err", err)
	}

	return &Store{DB: db, Redis: rdb, cache: NewReportCache(rdb)}, nil
}

// SaveArticles 以 ID 为幂等键写入，已存在时覆盖分析结果
func (s *Store) SaveArticles(ctx context.Context, items []processor.ArticleInsight) error {
	if len(items) == 0 {
		return nil
	}
	rows := make([]Article, 0, len(items))
	for _, it := range items {
		rows = append(rows, toRow(it))
	}
	err := s.DB.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"title", "account", "url", "content", "published_at", "published_date",
				"metrics", "keywords", "tone", "hot_index", "updated_at",
			}),
		}).
		CreateInBatches(rows, 200).Error
	if err != nil {
		return fmt.Errorf("save articles: %w", err)
	}
	// 不做按 key 通配删除，依赖短 TTL 的缓存自然过期
	return nil
}

// LoadRecords 读取最近发布的文章，作为重新分析的输入
func (s *Store) LoadRecords(ctx context.Context, limit int) ([]article.Record, error) {
	if limit <= 0 {
		limit = 500
	}
	var rows []Article
	err := s.DB.WithContext(ctx).
		Order("published_at DESC NULLS LAST").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("load records: %w", err)
	}
	out := make([]article.Record, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.Record())
	}
	return out, nil
}

// ListArticles 按公众号、排序与可选日期返回文章列表，并使用 Redis 做简单缓存
func (s *Store) ListArticles(ctx context.Context, q ListQuery) ([]Article, error) {
	q = q.Normalize()
	if cached, ok := s.cache.GetList(ctx, q); ok {
		logging.Debug("list articles cache hit", "account", q.Account, "sort", q.Sort)
		return cached, nil
	}

	db := s.DB.WithContext(ctx).Model(&Article{})
	if q.Date != "" {
		db = db.Where("published_date = ?", q.Date)
	}
	if q.Account != "" {
		db = db.Where("account = ?", q.Account)
	}
	switch q.Sort {
	case SortHot:
		db = db.Order("hot_index DESC").Order("published_at DESC NULLS LAST")
	default:
		db = db.Order("published_at DESC NULLS LAST")
	}

	var list []Article
	if err := db.Limit(q.Limit).Find(&list).Error; err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}
	s.cache.SetList(ctx, q, list)
	return list, nil
}

// SaveReport 保存报告并刷新最新报告缓存
func (s *Store) SaveReport(ctx context.Context, r *processor.Report) error {
	payload, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	row := Report{
		ID:           r.ID,
		GeneratedAt:  r.GeneratedAt,
		Extractor:    r.Extractor,
		ArticleCount: len(r.Articles),
		Payload:      datatypes.JSON(payload),
	}
	if err := s.DB.WithContext(ctx).Create(&row).Error; err != nil {
		return fmt.Errorf("save report: %w", err)
	}
	s.cacheLatest(ctx, r)
	return nil
}

// LatestReport 优先读缓存，未命中再查库
func (s *Store) LatestReport(ctx context.Context) (*processor.Report, error) {
	if r, err := s.cache.GetLatest(ctx); err == nil && r != nil {
		return r, nil
	}

	var row Report
	err := s.DB.WithContext(ctx).Order("generated_at DESC").First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("latest report: %w", err)
	}

	var r processor.Report
	if err := json.Unmarshal(row.Payload, &r); err != nil {
		return nil, fmt.Errorf("decode report %s: %w", row.ID, err)
	}
	s.cacheLatest(ctx, &r)
	return &r, nil
}

// cacheLatest 缓存写失败只记日志，不影响主流程
func (s *Store) cacheLatest(ctx context.Context, r *processor.Report) {
	if err := s.cache.SetLatest(ctx, r); err != nil {
		logging.Warn("cache latest report failed", "report", r.ID, "err", err)
	}
}
