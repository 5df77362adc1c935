package stats

import (
	"slices"

	"github.com/LJTian/ArticleInsight/internal/article"
)

// DefaultTopN 默认展示前 10 个公众号
const DefaultTopN = 10

// Aggregator 批量统计：公众号分布、篇幅、时间跨度与互动汇总
type Aggregator struct {
	topN int
}

func NewAggregator(topN int) *Aggregator {
	if topN <= 0 {
		topN = DefaultTopN
	}
	return &Aggregator{topN: topN}
}

// Aggregate 空输入返回全零统计，不会失败
func (a *Aggregator) Aggregate(articles []article.Record) article.BatchStatistics {
	out := article.BatchStatistics{TopAccounts: []article.AccountCount{}}
	if len(articles) == 0 {
		return out
	}
	out.TotalArticles = len(articles)

	// 公众号计数，order 记录首次出现顺序
	counts := make(map[string]int)
	var order []string

	lengths := make([]int, 0, len(articles))
	total := 0

	for _, rec := range articles {
		name := rec.AccountName()
		if _, ok := counts[name]; !ok {
			order = append(order, name)
		}
		counts[name]++

		n := rec.ContentLength()
		lengths = append(lengths, n)
		total += n

		if rec.PublishedAt != nil && !rec.PublishedAt.IsZero() {
			p := *rec.PublishedAt
			if out.TimeRange == nil {
				out.TimeRange = &article.TimeRange{Earliest: p, Latest: p}
			} else {
				if p.Before(out.TimeRange.Earliest) {
					out.TimeRange.Earliest = p
				}
				if p.After(out.TimeRange.Latest) {
					out.TimeRange.Latest = p
				}
			}
		}
	}

	out.TotalAccounts = len(order)
	out.TopAccounts = rankAccounts(order, counts, a.topN)

	out.AvgContentLength = float64(total) / float64(len(lengths))
	out.MinContentLength = slices.Min(lengths)
	out.MaxContentLength = slices.Max(lengths)
	out.MedianContentLength = median(lengths)

	out.Interaction = summarizeInteraction(articles)
	return out
}

// rankAccounts 按文章数降序，平局按首次出现顺序
func rankAccounts(order []string, counts map[string]int, topN int) []article.AccountCount {
	ranked := make([]article.AccountCount, 0, len(order))
	for _, name := range order {
		ranked = append(ranked, article.AccountCount{Account: name, Count: counts[name]})
	}
	slices.SortStableFunc(ranked, func(x, y article.AccountCount) int {
		return y.Count - x.Count
	})
	if len(ranked) > topN {
		ranked = ranked[:topN]
	}
	return ranked
}

func median(values []int) float64 {
	if len(values) == 0 {
		return 0
	}
	sorted := slices.Clone(values)
	slices.Sort(sorted)
	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return float64(sorted[mid])
	}
	return float64(sorted[mid-1]+sorted[mid]) / 2
}
