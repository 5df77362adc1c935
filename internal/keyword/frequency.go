package keyword

import (
	"strings"
	"unicode"

	"github.com/LJTian/ArticleInsight/internal/article"
	"golang.org/x/text/width"
)

// FrequencyExtractor 不依赖任何词典的兜底实现：按文字脚本切分后做词频统计
type FrequencyExtractor struct {
	filter termFilter
}

func NewFrequencyExtractor(cfg Config) *FrequencyExtractor {
	return &FrequencyExtractor{filter: newTermFilter(cfg)}
}

func (e *FrequencyExtractor) Name() string {
	return BackendFrequency
}

func (e *FrequencyExtractor) Extract(text string, topK int) []article.Keyword {
	if topK <= 0 || strings.TrimSpace(text) == "" {
		return []article.Keyword{}
	}
	c := newCounter(e.filter)
	for _, t := range scanTerms(width.Fold.String(text)) {
		c.add(t)
	}
	return c.rank(topK)
}

type runeKind int

const (
	kindNone runeKind = iota
	kindHan
	kindWord
)

func kindOf(r rune) runeKind {
	switch {
	case unicode.Is(unicode.Han, r):
		return kindHan
	case unicode.IsLetter(r), unicode.IsDigit(r):
		return kindWord
	default:
		return kindNone
	}
}

// scanTerms 拉丁字母/数字连续段作为一个词；
// 汉字连续段 2~4 字整体保留，更长的取重叠二元组，真实词语在多处出现时词频会累加
func scanTerms(text string) []string {
	var (
		out  []string
		buf  []rune
		kind = kindNone
	)
	flush := func() {
		defer func() { buf = buf[:0] }()
		switch kind {
		case kindWord:
			out = append(out, string(buf))
		case kindHan:
			if len(buf) <= 4 {
				out = append(out, string(buf))
				return
			}
			for i := 0; i+2 <= len(buf); i++ {
				out = append(out, string(buf[i:i+2]))
			}
		}
	}
	for _, r := range text {
		k := kindOf(r)
		if k != kind {
			flush()
			kind = k
		}
		if k != kindNone {
			buf = append(buf, r)
		}
	}
	flush()
	return out
}
