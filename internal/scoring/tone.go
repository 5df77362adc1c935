package scoring

import "strings"

// Tone 内容情感倾向
type Tone string

const (
	TonePositive Tone = "positive"
	ToneNeutral  Tone = "neutral"
	ToneNegative Tone = "negative"
)

// ToneConfig 情感词表
type ToneConfig struct {
	Positive []string `yaml:"positive"`
	Negative []string `yaml:"negative"`
}

func DefaultToneConfig() ToneConfig {
	return ToneConfig{
		Positive: []string{
			"突破", "增长", "创新", "成功", "利好", "领先", "提升", "机遇", "向好", "新高",
			"优秀", "助力", "共赢", "点赞", "喜讯", "繁荣", "回暖", "赋能",
		},
		Negative: []string{
			"下跌", "亏损", "危机", "风险", "裁员", "暴跌", "违规", "事故", "困境", "下滑",
			"处罚", "争议", "失败", "担忧", "负面", "倒闭", "崩盘", "造假",
		},
	}
}

// ToneClassifier 基于词表计数的情感判断，确定性、无外部依赖
type ToneClassifier struct {
	positive []string
	negative []string
}

func NewToneClassifier(cfg ToneConfig) *ToneClassifier {
	return &ToneClassifier{positive: cfg.Positive, negative: cfg.Negative}
}

// Classify 正面词出现次数多于负面词为 positive，反之 negative，相等为 neutral
func (c *ToneClassifier) Classify(text string) Tone {
	if strings.TrimSpace(text) == "" {
		return ToneNeutral
	}
	pos := countAll(text, c.positive)
	neg := countAll(text, c.negative)
	switch {
	case pos > neg:
		return TonePositive
	case neg > pos:
		return ToneNegative
	default:
		return ToneNeutral
	}
}

func countAll(text string, words []string) int {
	n := 0
	for _, w := range words {
		if w == "" {
			continue
		}
		n += strings.Count(text, w)
	}
	return n
}
