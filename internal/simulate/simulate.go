// Package simulate 生成模拟互动数据，仅用于演示和接口联调，不参与打分逻辑本身。
package simulate

import (
	"math/rand/v2"

	"github.com/LJTian/ArticleInsight/internal/article"
)

// Generator 随机生成阅读/点赞/分享等数据，固定 seed 时结果可复现
type Generator struct {
	rng *rand.Rand
}

func New(seed uint64) *Generator {
	return &Generator{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Metrics 阅读量 1000~100000，其余按常见比率区间随机
func (g *Generator) Metrics() article.InteractionMetrics {
	read := 1000 + g.rng.Int64N(99001)
	return article.InteractionMetrics{
		ReadCount:    read,
		LikeCount:    g.portion(read, 0.01, 0.06),
		ShareCount:   g.portion(read, 0.002, 0.015),
		CollectCount: g.portion(read, 0.005, 0.03),
		CommentCount: g.portion(read, 0.001, 0.01),
		Source:       article.SourceSimulated,
	}
}

func (g *Generator) portion(read int64, lo, hi float64) int64 {
	rate := lo + g.rng.Float64()*(hi-lo)
	return int64(float64(read) * rate)
}

// Fill 为缺少互动数据的文章补上模拟数据，返回新切片，不修改入参
func (g *Generator) Fill(records []article.Record) []article.Record {
	out := make([]article.Record, len(records))
	for i, rec := range records {
		if rec.Metrics == nil || rec.Metrics.Source == article.SourceMissing {
			m := g.Metrics()
			rec.Metrics = &m
		}
		out[i] = rec
	}
	return out
}
