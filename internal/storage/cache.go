package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/LJTian/ArticleInsight/internal/processor"
	"github.com/redis/go-redis/v9"
)

const (
	latestReportKey = "insight:report:latest"
	reportCacheTTL  = 30 * time.Minute
	// 列表缓存 5 分钟，减轻 DB 压力
	listCacheTTL = 5 * time.Minute
)

// ReportCache Redis 缓存：最新报告与文章列表
type ReportCache struct {
	rdb *redis.Client
}

func NewReportCache(rdb *redis.Client) *ReportCache {
	return &ReportCache{rdb: rdb}
}

func (c *ReportCache) SetLatest(ctx context.Context, r *processor.Report) error {
	if c == nil || c.rdb == nil || r == nil {
		return nil
	}
	bs, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	return c.rdb.Set(ctx, latestReportKey, bs, reportCacheTTL).Err()
}

// GetLatest 未命中时返回 (nil, nil)
func (c *ReportCache) GetLatest(ctx context.Context) (*processor.Report, error) {
	if c == nil || c.rdb == nil {
		return nil, nil
	}
	bs, err := c.rdb.Get(ctx, latestReportKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var r processor.Report
	if err := json.Unmarshal(bs, &r); err != nil {
		return nil, fmt.Errorf("unmarshal cached report: %w", err)
	}
	return &r, nil
}

func listKey(q ListQuery) string {
	return fmt.Sprintf("insight:articles:%s:%s:%d:%s", q.Account, q.Sort, q.Limit, q.Date)
}

func (c *ReportCache) GetList(ctx context.Context, q ListQuery) ([]Article, bool) {
	if c == nil || c.rdb == nil {
		return nil, false
	}
	bs, err := c.rdb.Get(ctx, listKey(q)).Bytes()
	if err != nil {
		return nil, false
	}
	var cached []Article
	if err := json.Unmarshal(bs, &cached); err != nil {
		return nil, false
	}
	return cached, true
}

func (c *ReportCache) SetList(ctx context.Context, q ListQuery, list []Article) {
	if c == nil || c.rdb == nil || len(list) == 0 {
		return
	}
	if bs, err := json.Marshal(list); err == nil {
		_ = c.rdb.Set(ctx, listKey(q), bs, listCacheTTL).Err()
	}
}
