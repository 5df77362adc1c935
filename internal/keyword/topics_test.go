package keyword

import (
	"testing"

	"github.com/LJTian/ArticleInsight/internal/article"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleArticles() []article.Record {
	return []article.Record{
		{ID: "1", Title: "大模型价格战打响", Account: "科技早知道", Content: "多家厂商下调大模型价格"},
		{ID: "2", Title: "芯片出口新规", Account: "半导体观察", Content: "芯片行业迎来变化"},
		{ID: "3", Title: "大模型落地金融", Account: "金融科技", Content: "银行试点"},
		{ID: "4", Title: "新能源车销量", Account: "汽车之家", Content: "大模型上车"},
		{ID: "5", Title: "大模型 Agent 实践", Account: "科技早知道", Content: "Agent 框架"},
	}
}

func TestIdentifyTopicsCountsAndSamples(t *testing.T) {
	kws := []article.Keyword{
		{Term: "大模型", Weight: 0.5},
		{Term: "芯片", Weight: 0.3},
		{Term: "量子", Weight: 0.2},
	}
	topics := IdentifyTopics(kws, sampleArticles(), 10)
	require.Len(t, topics, 2)

	assert.Equal(t, "大模型", topics[0].Keyword)
	assert.Equal(t, 4, topics[0].ArticleCount)
	require.Len(t, topics[0].Samples, 3)
	assert.Equal(t, article.Ref{Title: "大模型价格战打响", Account: "科技早知道"}, topics[0].Samples[0])
	assert.Equal(t, "新能源车销量", topics[0].Samples[2].Title)

	assert.Equal(t, "芯片", topics[1].Keyword)
	assert.Equal(t, 1, topics[1].ArticleCount)
}

func TestIdentifyTopicsNeverReturnsZeroCount(t *testing.T) {
	kws := []article.Keyword{{Term: "不存在的词", Weight: 1}, {Term: "agent", Weight: 0.5}}
	topics := IdentifyTopics(kws, sampleArticles(), 10)
	require.Len(t, topics, 1)
	assert.Equal(t, "agent", topics[0].Keyword)
	for _, tp := range topics {
		assert.Positive(t, tp.ArticleCount)
	}
}

func TestIdentifyTopicsTieKeepsWeightOrder(t *testing.T) {
	// 芯片 与 新能源 各命中 1 篇，保持权重顺序（输入顺序无关）
	kws := []article.Keyword{
		{Term: "新能源", Weight: 0.1},
		{Term: "芯片", Weight: 0.4},
	}
	topics := IdentifyTopics(kws, sampleArticles(), 10)
	require.Len(t, topics, 2)
	assert.Equal(t, "芯片", topics[0].Keyword)
	assert.Equal(t, "新能源", topics[1].Keyword)
}

func TestIdentifyTopicsSeedLimit(t *testing.T) {
	kws := []article.Keyword{
		{Term: "芯片", Weight: 0.9},
		{Term: "大模型", Weight: 0.1},
	}
	topics := IdentifyTopics(kws, sampleArticles(), 1)
	require.Len(t, topics, 1)
	assert.Equal(t, "芯片", topics[0].Keyword)
}

func TestIdentifyTopicsEmpty(t *testing.T) {
	assert.Empty(t, IdentifyTopics(nil, sampleArticles(), 10))
	assert.Empty(t, IdentifyTopics([]article.Keyword{{Term: "芯片", Weight: 1}}, nil, 10))
}
