package processor

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/LJTian/ArticleInsight/internal/article"
	"github.com/LJTian/ArticleInsight/internal/insight"
	"github.com/LJTian/ArticleInsight/internal/keyword"
	"github.com/LJTian/ArticleInsight/internal/logging"
	"github.com/LJTian/ArticleInsight/internal/scoring"
	"github.com/LJTian/ArticleInsight/internal/stats"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// ArticleInsight 单篇文章的分析结果：原始记录 + 派生数据，原记录不做修改
type ArticleInsight struct {
	article.Record
	Keywords []article.Keyword `json:"keywords"`
	Tone     scoring.Tone      `json:"tone"`
	Score    scoring.Result    `json:"score"`
}

// Report 一批文章的完整分析结果
type Report struct {
	ID          string                  `json:"id"`
	GeneratedAt time.Time               `json:"generatedAt"`
	Extractor   string                  `json:"extractor"`
	Articles    []ArticleInsight        `json:"articles"`
	Keywords    []article.Keyword       `json:"keywords"`
	Topics      []article.Topic         `json:"topics"`
	Stats       article.BatchStatistics `json:"stats"`
	Insights    []string                `json:"insights"`
}

// Options 批处理参数
type Options struct {
	ArticleKeywords int `yaml:"article_keywords"`
	BatchKeywords   int `yaml:"batch_keywords"`
	TopicSeedLimit  int `yaml:"topic_seed_limit"`
	Workers         int `yaml:"workers"`
}

func DefaultOptions() Options {
	return Options{
		ArticleKeywords: 10,
		BatchKeywords:   20,
		TopicSeedLimit:  keyword.DefaultTopicSeedLimit,
		Workers:         8,
	}
}

// Analyzer 串联 关键词提取 -> 打分/统计 -> 洞察 的批处理流程
type Analyzer struct {
	extractor  keyword.Extractor
	scorer     *scoring.Scorer
	tone       *scoring.ToneClassifier
	aggregator *stats.Aggregator
	insights   *insight.Generator
	opts       Options

	// Now 报告生成时间，方便测试注入
	Now func() time.Time
}

func NewAnalyzer(ext keyword.Extractor, scorer *scoring.Scorer, tone *scoring.ToneClassifier,
	agg *stats.Aggregator, gen *insight.Generator, opts Options) *Analyzer {
	if opts.Workers <= 0 {
		opts.Workers = 1
	}
	return &Analyzer{
		extractor:  ext,
		scorer:     scorer,
		tone:       tone,
		aggregator: agg,
		insights:   gen,
		opts:       opts,
		Now:        time.Now,
	}
}

// Normalize 补齐 ID 并按 ID 去重，保留首次出现的记录
func Normalize(records []article.Record) []article.Record {
	out := make([]article.Record, 0, len(records))
	seen := make(map[string]struct{}, len(records))

	for _, rec := range records {
		rec = rec.WithID()
		if _, ok := seen[rec.ID]; ok {
			continue
		}
		seen[rec.ID] = struct{}{}

		rec.Title = strings.TrimSpace(rec.Title)
		rec.Account = strings.TrimSpace(rec.Account)
		out = append(out, rec)
	}
	return out
}

// ScoreOne 单篇文章：关键词、情感与热度
func (a *Analyzer) ScoreOne(rec article.Record) ArticleInsight {
	text := rec.Title + "\n" + rec.Content
	kws := a.extractor.Extract(text, a.opts.ArticleKeywords)
	tone := a.tone.Classify(text)
	res := a.scorer.Score(rec, scoring.ContentSignals{
		KeywordCount:  len(kws),
		Tone:          tone,
		ContentLength: rec.ContentLength(),
	})
	return ArticleInsight{Record: rec, Keywords: kws, Tone: tone, Score: res}
}

// Analyze 逐篇打分可并发执行，结果写入各自下标；排序与汇总在全部完成后进行
func (a *Analyzer) Analyze(ctx context.Context, records []article.Record) (*Report, error) {
	recs := Normalize(records)
	items := make([]ArticleInsight, len(recs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.opts.Workers)
	for i, rec := range recs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			items[i] = a.ScoreOne(rec)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("analyze articles: %w", err)
	}

	// 热度降序，平局保持输入顺序
	slices.SortStableFunc(items, func(x, y ArticleInsight) int {
		return y.Score.HotIndex - x.Score.HotIndex
	})

	batchKeywords := a.extractor.Extract(corpus(recs), a.opts.BatchKeywords)
	topics := keyword.IdentifyTopics(batchKeywords, recs, a.opts.TopicSeedLimit)
	st := a.aggregator.Aggregate(recs)

	report := &Report{
		ID:          uuid.NewString(),
		GeneratedAt: a.Now(),
		Extractor:   a.extractor.Name(),
		Articles:    items,
		Keywords:    batchKeywords,
		Topics:      topics,
		Stats:       st,
		Insights:    a.insights.Generate(recs, batchKeywords, topics, st),
	}
	logging.Info("analyze done",
		"report", report.ID,
		"input", len(records),
		"articles", len(recs),
		"topics", len(topics),
		"extractor", report.Extractor)
	return report, nil
}

// corpus 整批文章的标题与正文拼接，用于提取批次关键词
func corpus(recs []article.Record) string {
	var b strings.Builder
	for _, r := range recs {
		b.WriteString(r.Title)
		b.WriteByte('\n')
		b.WriteString(r.Content)
		b.WriteByte('\n')
	}
	return b.String()
}
