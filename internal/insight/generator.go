package insight

import (
	"fmt"

	"github.com/LJTian/ArticleInsight/internal/article"
)

// DefaultMaxInsights 洞察条数上限
const DefaultMaxInsights = 6

// 篇幅档位
const (
	LengthDetailed = "detailed"
	LengthModerate = "moderate"
	LengthConcise  = "concise"
)

var lengthLabels = map[string]string{
	LengthDetailed: "深度长文",
	LengthModerate: "中等篇幅",
	LengthConcise:  "短小精悍",
}

// Config 生成规则的阈值
type Config struct {
	MaxInsights       int     `yaml:"max_insights"`
	DetailedLength    float64 `yaml:"detailed_length"`
	ConciseLength     float64 `yaml:"concise_length"`
	DiverseTopicCount int     `yaml:"diverse_topic_count"`
	HighLikeRate      float64 `yaml:"high_like_rate"`
	ModerateLikeRate  float64 `yaml:"moderate_like_rate"`
}

func DefaultConfig() Config {
	return Config{
		MaxInsights:       DefaultMaxInsights,
		DetailedLength:    2000,
		ConciseLength:     1000,
		DiverseTopicCount: 3,
		HighLikeRate:      0.03,
		ModerateLikeRate:  0.01,
	}
}

// Generator 基于规则把统计结果组织成可读的洞察文字，顺序即生成顺序
type Generator struct {
	cfg Config
}

func NewGenerator(cfg Config) *Generator {
	if cfg.MaxInsights <= 0 {
		cfg.MaxInsights = DefaultMaxInsights
	}
	return &Generator{cfg: cfg}
}

// LengthTier 平均篇幅 >2000 为 detailed，1000~2000 为 moderate，<1000 为 concise
func (g *Generator) LengthTier(avg float64) string {
	switch {
	case avg > g.cfg.DetailedLength:
		return LengthDetailed
	case avg >= g.cfg.ConciseLength:
		return LengthModerate
	default:
		return LengthConcise
	}
}

// Generate 文章为空时返回空列表
func (g *Generator) Generate(articles []article.Record, keywords []article.Keyword, topics []article.Topic, st article.BatchStatistics) []string {
	out := make([]string, 0, g.cfg.MaxInsights)
	if len(articles) == 0 {
		return out
	}

	if len(topics) > 0 {
		top := topics[0]
		out = append(out, fmt.Sprintf("最热话题「%s」覆盖 %d 篇文章", top.Keyword, top.ArticleCount))
	}
	if st.TotalAccounts > 1 {
		out = append(out, fmt.Sprintf("本批文章来自 %d 个公众号，来源较为多元", st.TotalAccounts))
	}
	if st.AvgContentLength > 0 {
		tier := g.LengthTier(st.AvgContentLength)
		// 展示时才取整
		out = append(out, fmt.Sprintf("平均篇幅约 %d 字，整体以%s为主（%s）", int(st.AvgContentLength), lengthLabels[tier], tier))
	}
	if len(keywords) > 0 {
		out = append(out, fmt.Sprintf("出现频率最高的关键词是「%s」", keywords[0].Term))
	}

	if in := st.Interaction; in != nil {
		if in.TotalReads > 0 {
			out = append(out, fmt.Sprintf("平均点赞率 %.2f%%，平均分享率 %.2f%%，整体互动%s",
				in.AvgLikeRate*100, in.AvgShareRate*100, g.engagementLevel(in.AvgLikeRate)))
		}
		if in.Best != nil {
			out = append(out, fmt.Sprintf("阅读量最高的是《%s》（%s），阅读 %d", in.Best.Title, in.Best.Account, in.Best.ReadCount))
		}
	}
	if len(topics) >= g.cfg.DiverseTopicCount {
		out = append(out, fmt.Sprintf("共识别出 %d 个话题，内容主题分布较广", len(topics)))
	}

	if len(out) > g.cfg.MaxInsights {
		out = out[:g.cfg.MaxInsights]
	}
	return out
}

func (g *Generator) engagementLevel(likeRate float64) string {
	switch {
	case likeRate >= g.cfg.HighLikeRate:
		return "表现优秀"
	case likeRate >= g.cfg.ModerateLikeRate:
		return "表现良好"
	default:
		return "偏低，可加强引导"
	}
}
