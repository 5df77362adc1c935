package keyword

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/LJTian/ArticleInsight/internal/article"
	"github.com/LJTian/ArticleInsight/internal/logging"
	"github.com/go-ego/gse"
	"github.com/ikawaha/kagome-dict/ipa"
	"github.com/ikawaha/kagome/v2/tokenizer"
	"golang.org/x/text/width"
)

// SegmenterExtractor 按文字脚本选择词典分词：假名占比高的文本交给 kagome(IPA)，
// 其余（简体中文、拉丁字母）交给 gse 中文词典，只保留名词类词语
type SegmenterExtractor struct {
	zh     *gse.Segmenter
	ja     *tokenizer.Tokenizer
	filter termFilter
}

// NewSegmenterExtractor 两套词典都加载失败时返回错误，由 New 负责降级；
// 只缺中文词典时中文文本改用词频切分
func NewSegmenterExtractor(cfg Config) (*SegmenterExtractor, error) {
	e := &SegmenterExtractor{filter: newTermFilter(cfg)}

	zh, zhErr := loadChinese()
	if zhErr == nil {
		e.zh = zh
	}
	ja, jaErr := loadJapanese()
	if jaErr == nil {
		e.ja = ja
	}

	switch {
	case e.zh == nil && e.ja == nil:
		return nil, errors.Join(zhErr, jaErr)
	case e.zh == nil:
		logging.Warn("keyword: chinese dictionary unavailable, chinese text uses frequency scan", "err", zhErr)
	case e.ja == nil:
		logging.Warn("keyword: japanese dictionary unavailable", "err", jaErr)
	}
	return e, nil
}

func loadChinese() (seg *gse.Segmenter, err error) {
	defer func() {
		if r := recover(); r != nil {
			seg, err = nil, fmt.Errorf("load gse dict: %v", r)
		}
	}()
	seg = new(gse.Segmenter)
	if err := seg.LoadDictEmbed(); err != nil {
		return nil, fmt.Errorf("load gse dict: %w", err)
	}
	return seg, nil
}

func loadJapanese() (tok *tokenizer.Tokenizer, err error) {
	defer func() {
		if r := recover(); r != nil {
			tok, err = nil, fmt.Errorf("load ipa dict: %v", r)
		}
	}()
	tok, err = tokenizer.New(ipa.Dict(), tokenizer.OmitBosEos())
	if err != nil {
		return nil, fmt.Errorf("init tokenizer: %w", err)
	}
	return tok, nil
}

func (e *SegmenterExtractor) Name() string {
	return BackendSegmenter
}

func (e *SegmenterExtractor) Extract(text string, topK int) []article.Keyword {
	if topK <= 0 || strings.TrimSpace(text) == "" {
		return []article.Keyword{}
	}
	text = width.Fold.String(text)
	c := newCounter(e.filter)

	switch {
	case e.ja != nil && isJapanese(text):
		for _, t := range e.ja.Tokenize(text) {
			if t.Class == tokenizer.DUMMY || !isContentNoun(t.POS()) {
				continue
			}
			c.add(t.Surface)
		}
	case e.zh != nil:
		for _, s := range e.zh.Segment([]byte(text)) {
			tok := s.Token()
			if !isChineseContentWord(tok.Text(), tok.Pos()) {
				continue
			}
			c.add(tok.Text())
		}
	default:
		for _, t := range scanTerms(text) {
			c.add(t)
		}
	}
	return c.rank(topK)
}

// isJapanese 假名至少占汉字与假名总数的一成；中文标题里偶尔出现的「の」不算
func isJapanese(text string) bool {
	var kana, cjk int
	for _, r := range text {
		switch {
		case unicode.In(r, unicode.Hiragana, unicode.Katakana):
			kana++
			cjk++
		case unicode.Is(unicode.Han, r):
			cjk++
		}
	}
	return kana > 0 && kana*10 >= cjk
}

// isContentNoun IPA 词性：名词中排除代名词、数词、非自立与接尾
func isContentNoun(pos []string) bool {
	if len(pos) == 0 || pos[0] != "名詞" {
		return false
	}
	if len(pos) > 1 {
		switch pos[1] {
		case "代名詞", "数", "非自立", "接尾":
			return false
		}
	}
	return true
}

// isChineseContentWord 含汉字的词只保留名词类（n* / vn），拉丁字母与数字词交给过滤器处理
func isChineseContentWord(text, pos string) bool {
	if strings.IndexFunc(text, func(r rune) bool { return unicode.Is(unicode.Han, r) }) < 0 {
		return true
	}
	return strings.HasPrefix(pos, "n") || pos == "vn"
}
