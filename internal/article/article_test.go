package article

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRatesZeroWithoutReads(t *testing.T) {
	m := InteractionMetrics{ReadCount: 0, LikeCount: 10, ShareCount: 5}
	assert.Zero(t, m.LikeRate())
	assert.Zero(t, m.ShareRate())

	m.ReadCount = 1000
	assert.InDelta(t, 0.01, m.LikeRate(), 1e-9)
	assert.InDelta(t, 0.005, m.ShareRate(), 1e-9)
}

func TestClampedZeroesNegativeCounts(t *testing.T) {
	m := InteractionMetrics{ReadCount: -5, LikeCount: -1, ShareCount: 3}.Clamped()
	assert.Equal(t, int64(0), m.ReadCount)
	assert.Equal(t, int64(0), m.LikeCount)
	assert.Equal(t, int64(3), m.ShareCount)
	assert.Equal(t, SourceAPI, m.Source)
}

func TestContentLengthCountsRunes(t *testing.T) {
	r := Record{Content: "你好world"}
	assert.Equal(t, 7, r.ContentLength())
}

func TestAccountNameFallback(t *testing.T) {
	assert.Equal(t, UnknownAccount, Record{Account: "  "}.AccountName())
	assert.Equal(t, "科技早知道", Record{Account: "科技早知道"}.AccountName())
}

func TestWithIDDeterministic(t *testing.T) {
	a := Record{URL: "https://mp.weixin.qq.com/s/a"}.WithID()
	b := Record{URL: "https://mp.weixin.qq.com/s/a"}.WithID()
	c := Record{URL: "https://mp.weixin.qq.com/s/b"}.WithID()
	assert.Equal(t, a.ID, b.ID)
	assert.NotEqual(t, a.ID, c.ID)
	assert.Len(t, a.ID, 40)

	// 已有 ID 不覆盖
	kept := Record{ID: "x1", URL: "https://mp.weixin.qq.com/s/a"}.WithID()
	assert.Equal(t, "x1", kept.ID)

	// 无 URL 时用 公众号+标题
	d := Record{Account: "A", Title: "T"}.WithID()
	assert.NotEmpty(t, d.ID)
}

func TestDecodeJSON(t *testing.T) {
	in := `[
		{"title":"标题一","account":"号A","content":"正文","publishedAt":"2024-05-01T08:00:00Z",
		 "metrics":{"readCount":100,"likeCount":3,"source":"api"}},
		{"id":"fixed","title":"标题二","account":"号B","content":"正文二"}
	]`
	list, err := DecodeJSON(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, list, 2)

	assert.NotEmpty(t, list[0].ID)
	require.NotNil(t, list[0].PublishedAt)
	require.NotNil(t, list[0].Metrics)
	assert.Equal(t, int64(100), list[0].Metrics.ReadCount)
	assert.Equal(t, "fixed", list[1].ID)
	assert.Nil(t, list[1].Metrics)
	assert.Nil(t, list[1].PublishedAt)
}

func TestDecodeJSONInvalid(t *testing.T) {
	_, err := DecodeJSON(strings.NewReader("{not json"))
	assert.Error(t, err)
}
