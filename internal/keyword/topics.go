package keyword

import (
	"slices"
	"strings"

	"github.com/LJTian/ArticleInsight/internal/article"
)

const maxTopicSamples = 3

// IdentifyTopics 取权重最高的 seedLimit 个关键词作为话题种子，
// 统计标题或正文包含该词的文章数；结果按文章数降序，平局保持关键词权重顺序。
// 不含任何文章的话题会被丢弃。
func IdentifyTopics(keywords []article.Keyword, articles []article.Record, seedLimit int) []article.Topic {
	if seedLimit <= 0 {
		seedLimit = DefaultTopicSeedLimit
	}
	if len(keywords) == 0 || len(articles) == 0 {
		return []article.Topic{}
	}

	seeds := slices.Clone(keywords)
	slices.SortStableFunc(seeds, func(a, b article.Keyword) int {
		switch {
		case a.Weight > b.Weight:
			return -1
		case a.Weight < b.Weight:
			return 1
		}
		return 0
	})
	if len(seeds) > seedLimit {
		seeds = seeds[:seedLimit]
	}

	// 预先规范化，避免每个种子重复处理全文
	titles := make([]string, len(articles))
	bodies := make([]string, len(articles))
	for i, a := range articles {
		titles[i] = normalizeTerm(a.Title)
		bodies[i] = normalizeTerm(a.Content)
	}

	topics := make([]article.Topic, 0, len(seeds))
	for _, kw := range seeds {
		term := normalizeTerm(kw.Term)
		if term == "" {
			continue
		}
		t := article.Topic{Keyword: kw.Term, Samples: []article.Ref{}}
		for i, a := range articles {
			if !strings.Contains(titles[i], term) && !strings.Contains(bodies[i], term) {
				continue
			}
			t.ArticleCount++
			if len(t.Samples) < maxTopicSamples {
				t.Samples = append(t.Samples, article.Ref{Title: a.Title, Account: a.AccountName()})
			}
		}
		if t.ArticleCount > 0 {
			topics = append(topics, t)
		}
	}

	slices.SortStableFunc(topics, func(a, b article.Topic) int {
		return b.ArticleCount - a.ArticleCount
	})
	return topics
}
