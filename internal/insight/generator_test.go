package insight

import (
	"strings"
	"testing"

	"github.com/LJTian/ArticleInsight/internal/article"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateEmptyArticles(t *testing.T) {
	g := NewGenerator(DefaultConfig())
	got := g.Generate(nil, []article.Keyword{{Term: "芯片", Weight: 1}}, nil, article.BatchStatistics{})
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestGenerateBasicOrder(t *testing.T) {
	g := NewGenerator(DefaultConfig())
	articles := []article.Record{{Title: "a"}, {Title: "b"}}
	kws := []article.Keyword{{Term: "大模型", Weight: 0.4}, {Term: "芯片", Weight: 0.2}}
	topics := []article.Topic{{Keyword: "大模型", ArticleCount: 2}}
	st := article.BatchStatistics{TotalArticles: 2, TotalAccounts: 2, AvgContentLength: 1500.7}

	got := g.Generate(articles, kws, topics, st)
	require.Len(t, got, 4)
	assert.Equal(t, "最热话题「大模型」覆盖 2 篇文章", got[0])
	assert.Contains(t, got[1], "2 个公众号")
	assert.Contains(t, got[2], "1500 字")
	assert.Contains(t, got[2], LengthModerate)
	assert.Equal(t, "出现频率最高的关键词是「大模型」", got[3])
}

func TestGenerateSkipsRules(t *testing.T) {
	g := NewGenerator(DefaultConfig())
	articles := []article.Record{{Title: "a"}}
	st := article.BatchStatistics{TotalArticles: 1, TotalAccounts: 1}

	got := g.Generate(articles, nil, nil, st)
	assert.Empty(t, got)
}

func TestLengthTier(t *testing.T) {
	g := NewGenerator(DefaultConfig())
	assert.Equal(t, LengthDetailed, g.LengthTier(2000.5))
	assert.Equal(t, LengthModerate, g.LengthTier(2000))
	assert.Equal(t, LengthModerate, g.LengthTier(1000))
	assert.Equal(t, LengthConcise, g.LengthTier(999.9))
}

func TestGenerateRichStatsTruncatesToSix(t *testing.T) {
	g := NewGenerator(DefaultConfig())
	articles := []article.Record{{Title: "a"}, {Title: "b"}, {Title: "c"}}
	kws := []article.Keyword{{Term: "芯片", Weight: 0.5}}
	topics := []article.Topic{
		{Keyword: "芯片", ArticleCount: 3},
		{Keyword: "出口", ArticleCount: 2},
		{Keyword: "光刻", ArticleCount: 1},
	}
	st := article.BatchStatistics{
		TotalArticles:    3,
		TotalAccounts:    3,
		AvgContentLength: 2500,
		Interaction: &article.InteractionSummary{
			ArticlesWithMetrics: 3,
			TotalReads:          30000,
			AvgLikeRate:         0.035,
			AvgShareRate:        0.004,
			Best:                &article.BestArticle{Ref: article.Ref{Title: "芯片新规解读", Account: "半导体观察"}, ReadCount: 20000},
		},
	}

	got := g.Generate(articles, kws, topics, st)
	require.Len(t, got, 6)
	assert.True(t, strings.HasPrefix(got[0], "最热话题「芯片」"))
	assert.Contains(t, got[2], LengthDetailed)
	assert.Contains(t, got[4], "3.50%")
	assert.Contains(t, got[4], "表现优秀")
	assert.Contains(t, got[5], "《芯片新规解读》")
	for _, s := range got {
		assert.NotContains(t, s, "个话题")
	}
}

func TestGenerateCustomMax(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxInsights = 2
	g := NewGenerator(cfg)
	articles := []article.Record{{Title: "a"}, {Title: "b"}}
	st := article.BatchStatistics{TotalAccounts: 2, AvgContentLength: 10}
	got := g.Generate(articles, []article.Keyword{{Term: "x1", Weight: 1}}, nil, st)
	require.Len(t, got, 2)
	assert.Contains(t, got[1], LengthConcise)
}
