package simulate

import (
	"testing"

	"github.com/LJTian/ArticleInsight/internal/article"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsRanges(t *testing.T) {
	g := New(42)
	for i := 0; i < 200; i++ {
		m := g.Metrics()
		assert.GreaterOrEqual(t, m.ReadCount, int64(1000))
		assert.LessOrEqual(t, m.ReadCount, int64(100000))
		assert.LessOrEqual(t, m.LikeCount, m.ReadCount)
		assert.GreaterOrEqual(t, m.ShareCount, int64(0))
		assert.Equal(t, article.SourceSimulated, m.Source)
	}
}

func TestSameSeedReproducible(t *testing.T) {
	assert.Equal(t, New(7).Metrics(), New(7).Metrics())
}

func TestFillDoesNotMutateInput(t *testing.T) {
	api := &article.InteractionMetrics{ReadCount: 5, Source: article.SourceAPI}
	in := []article.Record{{ID: "a"}, {ID: "b", Metrics: api}}

	out := New(1).Fill(in)
	require.Len(t, out, 2)
	assert.Nil(t, in[0].Metrics)
	require.NotNil(t, out[0].Metrics)
	assert.Equal(t, article.SourceSimulated, out[0].Metrics.Source)
	assert.Same(t, api, out[1].Metrics)
}
