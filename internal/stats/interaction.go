package stats

import "github.com/LJTian/ArticleInsight/internal/article"

// summarizeInteraction 没有任何文章带互动数据时返回 nil
func summarizeInteraction(articles []article.Record) *article.InteractionSummary {
	var (
		sum       article.InteractionSummary
		likeRates float64
		shareRate float64
		rated     int
		bestReads int64 = -1
	)
	sum.SourceBreakdown = make(map[article.DataSource]int)

	for _, rec := range articles {
		if rec.Metrics == nil {
			sum.SourceBreakdown[article.SourceMissing]++
			continue
		}
		m := rec.Metrics.Clamped()
		sum.SourceBreakdown[m.Source]++
		if m.Source == article.SourceMissing {
			continue
		}

		sum.ArticlesWithMetrics++
		sum.TotalReads += m.ReadCount
		sum.TotalLikes += m.LikeCount
		sum.TotalShares += m.ShareCount
		sum.TotalCollects += m.CollectCount
		sum.TotalComments += m.CommentCount

		if m.ReadCount > 0 {
			likeRates += m.LikeRate()
			shareRate += m.ShareRate()
			rated++
		}
		// 严格大于，平局保留先出现的文章
		if m.ReadCount > bestReads {
			bestReads = m.ReadCount
			sum.Best = &article.BestArticle{
				Ref:       article.Ref{Title: rec.Title, Account: rec.AccountName()},
				ReadCount: m.ReadCount,
			}
		}
	}

	if sum.ArticlesWithMetrics == 0 {
		return nil
	}
	if rated > 0 {
		sum.AvgLikeRate = likeRates / float64(rated)
		sum.AvgShareRate = shareRate / float64(rated)
	}
	return &sum
}
