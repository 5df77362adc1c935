package processor

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/LJTian/ArticleInsight/internal/article"
	"github.com/LJTian/ArticleInsight/internal/insight"
	"github.com/LJTian/ArticleInsight/internal/keyword"
	"github.com/LJTian/ArticleInsight/internal/scoring"
	"github.com/LJTian/ArticleInsight/internal/stats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func newTestAnalyzer(workers int) *Analyzer {
	scorer := scoring.NewScorer(scoring.DefaultConfig())
	scorer.Now = func() time.Time { return now }
	opts := DefaultOptions()
	opts.Workers = workers
	a := NewAnalyzer(
		keyword.NewFrequencyExtractor(keyword.DefaultConfig()),
		scorer,
		scoring.NewToneClassifier(scoring.DefaultToneConfig()),
		stats.NewAggregator(0),
		insight.NewGenerator(insight.DefaultConfig()),
		opts,
	)
	a.Now = func() time.Time { return now }
	return a
}

func batch() []article.Record {
	today := now.Add(-time.Hour)
	return []article.Record{
		{
			URL: "https://mp.weixin.qq.com/s/1", Title: "对话某科技公司CEO：下一步怎么走", Account: "科技早知道",
			Content: "大模型 芯片 大模型", PublishedAt: &today,
			Metrics: &article.InteractionMetrics{ReadCount: 120000, LikeCount: 3000, ShareCount: 600, Source: article.SourceAPI},
		},
		{
			URL: "https://mp.weixin.qq.com/s/2", Title: "周末随笔", Account: "生活家",
			Content: strings.Repeat("突破 ", 10) + strings.Repeat("文", 2500),
		},
		{
			URL: "https://mp.weixin.qq.com/s/1", Title: "重复的文章", Account: "科技早知道",
		},
		{
			URL: "https://mp.weixin.qq.com/s/3", Title: "大模型价格战", Account: "科技早知道",
			Content: "大模型 降价",
			Metrics: &article.InteractionMetrics{ReadCount: 100, Source: article.SourceAPI},
		},
	}
}

func TestNormalizeDedupesByID(t *testing.T) {
	in := batch()
	out := Normalize(in)
	require.Len(t, out, 3)
	for _, r := range out {
		assert.NotEmpty(t, r.ID)
	}
	assert.Empty(t, in[0].ID, "input must not be mutated")
}

func TestAnalyzeReport(t *testing.T) {
	a := newTestAnalyzer(4)
	report, err := a.Analyze(context.Background(), batch())
	require.NoError(t, err)

	assert.NotEmpty(t, report.ID)
	assert.Equal(t, now, report.GeneratedAt)
	assert.Equal(t, keyword.BackendFrequency, report.Extractor)
	require.Len(t, report.Articles, 3)

	// 排名按热度降序
	assert.Equal(t, "对话某科技公司CEO：下一步怎么走", report.Articles[0].Title)
	assert.Equal(t, 74, report.Articles[0].Score.HotIndex)
	for i := 1; i < len(report.Articles); i++ {
		assert.GreaterOrEqual(t, report.Articles[i-1].Score.HotIndex, report.Articles[i].Score.HotIndex)
	}

	var essay ArticleInsight
	for _, it := range report.Articles {
		if it.Title == "周末随笔" {
			essay = it
		}
	}
	assert.Equal(t, scoring.TonePositive, essay.Tone)
	assert.False(t, essay.Score.HasInteraction)
	// 30 基础 + 10 正面 + 15 长文，关键词不足 6 个
	assert.Equal(t, 55, essay.Score.HotIndex)

	assert.Equal(t, 3, report.Stats.TotalArticles)
	assert.Equal(t, 2, report.Stats.TotalAccounts)
	require.NotEmpty(t, report.Topics)
	assert.Equal(t, "大模型", report.Topics[0].Keyword)
	assert.Equal(t, 2, report.Topics[0].ArticleCount)
	require.NotEmpty(t, report.Insights)
	assert.LessOrEqual(t, len(report.Insights), insight.DefaultMaxInsights)
	assert.Contains(t, report.Insights[0], "大模型")
}

func TestAnalyzeDeterministicAcrossWorkers(t *testing.T) {
	r1, err := newTestAnalyzer(1).Analyze(context.Background(), batch())
	require.NoError(t, err)
	r8, err := newTestAnalyzer(8).Analyze(context.Background(), batch())
	require.NoError(t, err)

	assert.Equal(t, r1.Articles, r8.Articles)
	assert.Equal(t, r1.Topics, r8.Topics)
	assert.Equal(t, r1.Insights, r8.Insights)
}

func TestAnalyzeEmpty(t *testing.T) {
	report, err := newTestAnalyzer(2).Analyze(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, report.Articles)
	assert.Empty(t, report.Topics)
	assert.Empty(t, report.Insights)
	assert.Zero(t, report.Stats.TotalArticles)
}

func TestAnalyzeCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := newTestAnalyzer(2).Analyze(ctx, batch())
	assert.ErrorIs(t, err, context.Canceled)
}
