package keyword

import (
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/LJTian/ArticleInsight/internal/article"
	"github.com/LJTian/ArticleInsight/internal/logging"
	"golang.org/x/text/width"
)

// Extractor 从文本中提取按权重降序排列的关键词
type Extractor interface {
	Name() string
	Extract(text string, topK int) []article.Keyword
}

// New 启动时做一次能力探测：分词器可用则用分词器，否则退回词频统计
func New(cfg Config) Extractor {
	if cfg.Backend == BackendFrequency {
		return NewFrequencyExtractor(cfg)
	}
	seg, err := NewSegmenterExtractor(cfg)
	if err != nil {
		logging.Warn("keyword: segmenter unavailable, falling back to frequency", "err", err)
		return NewFrequencyExtractor(cfg)
	}
	return seg
}

// termFilter 两种实现共用的规范化与过滤规则
type termFilter struct {
	stop     map[string]struct{}
	minRunes int
}

func newTermFilter(cfg Config) termFilter {
	f := termFilter{
		stop:     make(map[string]struct{}, len(cfg.StopWords)),
		minRunes: cfg.MinTermRunes,
	}
	if f.minRunes < 2 {
		f.minRunes = 2
	}
	for _, w := range cfg.StopWords {
		f.stop[normalizeTerm(w)] = struct{}{}
	}
	return f
}

// normalizeTerm 全角转半角、拉丁字母转小写
func normalizeTerm(s string) string {
	return strings.ToLower(strings.TrimSpace(width.Fold.String(s)))
}

func (f termFilter) accept(raw string) (string, bool) {
	term := normalizeTerm(raw)
	if utf8.RuneCountInString(term) < f.minRunes {
		return "", false
	}
	if _, ok := f.stop[term]; ok {
		return "", false
	}
	if strings.IndexFunc(term, func(r rune) bool { return unicode.IsLetter(r) || unicode.IsDigit(r) }) < 0 {
		return "", false
	}
	return term, true
}

type termStat struct {
	term  string
	count int
	first int
}

// counter 统计词频并记录首次出现位置，用于平局排序
type counter struct {
	filter termFilter
	index  map[string]*termStat
	stats  []*termStat
	total  int
}

func newCounter(f termFilter) *counter {
	return &counter{filter: f, index: make(map[string]*termStat)}
}

func (c *counter) add(raw string) {
	term, ok := c.filter.accept(raw)
	if !ok {
		return
	}
	c.total++
	if st, ok := c.index[term]; ok {
		st.count++
		return
	}
	st := &termStat{term: term, count: 1, first: len(c.stats)}
	c.index[term] = st
	c.stats = append(c.stats, st)
}

// rank 权重 = 词频 / 有效词总数，按权重降序，平局按首次出现顺序
func (c *counter) rank(topK int) []article.Keyword {
	if topK <= 0 || c.total == 0 {
		return []article.Keyword{}
	}
	sorted := slices.Clone(c.stats)
	slices.SortStableFunc(sorted, func(a, b *termStat) int {
		if a.count != b.count {
			return b.count - a.count
		}
		return a.first - b.first
	})
	if len(sorted) > topK {
		sorted = sorted[:topK]
	}
	out := make([]article.Keyword, 0, len(sorted))
	for _, st := range sorted {
		out = append(out, article.Keyword{
			Term:   st.term,
			Weight: float64(st.count) / float64(c.total),
		})
	}
	return out
}
