package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/LJTian/ArticleInsight/internal/article"
	"github.com/LJTian/ArticleInsight/internal/logging"
	"github.com/LJTian/ArticleInsight/internal/processor"
	"github.com/robfig/cron/v3"
)

// Store 定时重算所需的存储能力
type Store interface {
	LoadRecords(ctx context.Context, limit int) ([]article.Record, error)
	SaveArticles(ctx context.Context, items []processor.ArticleInsight) error
	SaveReport(ctx context.Context, r *processor.Report) error
}

// 单轮任务超时
const jobTimeout = 5 * time.Minute

// Scheduler 周期性重新分析已入库文章：时效分随时间衰减，热度需定期刷新
type Scheduler struct {
	cron     *cron.Cron
	analyzer *processor.Analyzer
	store    Store
	limit    int
}

// New limit 为每轮读取的文章上限，<=0 时由存储层决定
func New(spec string, analyzer *processor.Analyzer, store Store, limit int) (*Scheduler, error) {
	c := cron.New()

	s := &Scheduler{
		cron:     c,
		analyzer: analyzer,
		store:    store,
		limit:    limit,
	}

	_, err := c.AddFunc(spec, s.runJob)
	if err != nil {
		return nil, fmt.Errorf("add cron %q: %w", spec, err)
	}

	return s, nil
}

func (s *Scheduler) Start() {
	s.cron.Start()
	// 延迟执行首轮重算，避免与服务启动争抢数据库连接
	const startupDelay = 15 * time.Second
	time.AfterFunc(startupDelay, func() {
		go s.runJob()
	})
}

// Stop 停止调度并等待正在执行的任务结束
func (s *Scheduler) Stop() context.Context {
	return s.cron.Stop()
}

func (s *Scheduler) runJob() {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()
	if _, err := s.RunOnce(ctx); err != nil {
		logging.Error("rescore job failed", "err", err)
	}
}

// RunOnce 单次执行：读取 -> 分析 -> 回写热度与报告。无文章时返回 (nil, nil)
func (s *Scheduler) RunOnce(ctx context.Context) (*processor.Report, error) {
	log := logging.WithPrefix("rescore")
	log.Info("start job...")

	records, err := s.store.LoadRecords(ctx, s.limit)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		log.Info("job skipped, no articles")
		return nil, nil
	}

	report, err := s.analyzer.Analyze(ctx, records)
	if err != nil {
		return nil, err
	}
	if err := s.store.SaveArticles(ctx, report.Articles); err != nil {
		return nil, err
	}
	if err := s.store.SaveReport(ctx, report); err != nil {
		return nil, err
	}

	log.Info("job done", "articles", len(report.Articles), "report", report.ID)
	return report, nil
}
