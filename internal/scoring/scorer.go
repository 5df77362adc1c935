package scoring

import (
	"strings"
	"time"

	"github.com/LJTian/ArticleInsight/internal/article"
	"golang.org/x/text/width"
)

// Breakdown 各分项得分，便于解释热度来源
type Breakdown struct {
	Volume     int `json:"volume"`
	Engagement int `json:"engagement"`
	Content    int `json:"content"`
	Freshness  int `json:"freshness"`

	// 无互动数据时的估算分项
	Base         int `json:"base,omitempty"`
	KeywordBonus int `json:"keywordBonus,omitempty"`
	ToneBonus    int `json:"toneBonus,omitempty"`
	Length       int `json:"length,omitempty"`
}

// Result 热度指数，取值 [0, 100]
type Result struct {
	HotIndex       int       `json:"hotIndex"`
	Breakdown      Breakdown `json:"breakdown"`
	HasInteraction bool      `json:"hasInteraction"`
}

// ContentSignals 无互动数据时用于估算的内容特征
type ContentSignals struct {
	KeywordCount  int
	Tone          Tone
	ContentLength int
}

// Scorer 规则化热度打分，纯函数，可并发使用
type Scorer struct {
	cfg     Config
	curated []string
	// Now 方便测试注入当前时间
	Now func() time.Time
}

func NewScorer(cfg Config) *Scorer {
	curated := make([]string, 0, len(cfg.CuratedKeywords))
	for _, k := range cfg.CuratedKeywords {
		if k = strings.TrimSpace(width.Fold.String(k)); k != "" {
			curated = append(curated, k)
		}
	}
	if cfg.MaxScore <= 0 {
		cfg.MaxScore = 100
	}
	return &Scorer{cfg: cfg, curated: curated, Now: time.Now}
}

// Score 有可用互动数据时走完整规则，否则走内容估算
func (s *Scorer) Score(rec article.Record, sig ContentSignals) Result {
	if rec.Metrics != nil && rec.Metrics.Source != article.SourceMissing {
		return s.HotIndex(rec, *rec.Metrics)
	}
	return s.HotIndexWithoutInteraction(sig)
}

// HotIndex 四个分项（阅读量/互动率/内容价值/时效）各自封顶后相加，总分封顶 100。
// 约定所有计数 >= 0；负数按 0 处理，不会报错。
func (s *Scorer) HotIndex(rec article.Record, m article.InteractionMetrics) Result {
	m = m.Clamped()

	var b Breakdown
	b.Volume = capAt(s.cfg.Volume.points(float64(m.ReadCount)), s.cfg.VolumeCap)

	// 分母至少为 1，仅用于计算比率
	denom := float64(max(m.ReadCount, 1))
	likeRate := float64(m.LikeCount) / denom
	shareRate := float64(m.ShareCount) / denom
	b.Engagement = capAt(s.cfg.LikeRate.points(likeRate)+s.cfg.ShareRate.points(shareRate), s.cfg.EngagementCap)

	b.Content = s.contentValue(rec.Title)
	b.Freshness = s.freshness(rec.PublishedAt)

	total := b.Volume + b.Engagement + b.Content + b.Freshness
	return Result{
		HotIndex:       clampScore(total, s.cfg.MaxScore),
		Breakdown:      b,
		HasInteraction: true,
	}
}

// HotIndexWithoutInteraction 基础分 + 关键词丰富度 + 正面情感 + 篇幅档位
func (s *Scorer) HotIndexWithoutInteraction(sig ContentSignals) Result {
	ni := s.cfg.NoInteraction
	b := Breakdown{Base: ni.Base}
	if sig.KeywordCount > ni.KeywordThreshold {
		b.KeywordBonus = ni.KeywordBonus
	}
	if sig.Tone == TonePositive {
		b.ToneBonus = ni.PositiveToneBonus
	}
	b.Length = ni.LengthTiers.points(float64(max(sig.ContentLength, 0)))

	total := b.Base + b.KeywordBonus + b.ToneBonus + b.Length
	return Result{HotIndex: clampScore(total, s.cfg.MaxScore), Breakdown: b}
}

// contentValue 标题每命中一个精选关键词加分，封顶
func (s *Scorer) contentValue(title string) int {
	title = width.Fold.String(title)
	score := 0
	for _, k := range s.curated {
		if strings.Contains(title, k) {
			score += s.cfg.PointsPerKeyword
		}
	}
	return capAt(score, s.cfg.ContentCap)
}

// freshness 按发布距今天数分档；未来时间按 0 天处理，缺失时间不得分
func (s *Scorer) freshness(published *time.Time) int {
	if published == nil || published.IsZero() {
		return 0
	}
	days := s.Now().Sub(*published).Hours() / 24
	if days < 0 {
		days = 0
	}
	for _, t := range s.cfg.Freshness {
		if days <= t.MaxDays {
			return capAt(t.Points, s.cfg.FreshnessCap)
		}
	}
	return 0
}

func capAt(v, limit int) int {
	if v < 0 {
		return 0
	}
	if limit > 0 && v > limit {
		return limit
	}
	return v
}

func clampScore(v, limit int) int {
	if v < 0 {
		return 0
	}
	if v > limit {
		return limit
	}
	return v
}
