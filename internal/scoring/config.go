package scoring

// Tier 阈值档位：取值 >= Min 时得 Points 分
type Tier struct {
	Min    float64 `yaml:"min"`
	Points int     `yaml:"points"`
}

// TierTable 档位按 Min 从高到低排列，命中第一个即返回；都不命中时得 Default
type TierTable struct {
	Tiers   []Tier `yaml:"tiers"`
	Default int    `yaml:"default"`
}

func (t TierTable) points(v float64) int {
	for _, tier := range t.Tiers {
		if v >= tier.Min {
			return tier.Points
		}
	}
	return t.Default
}

// AgeTier 发布天数 <= MaxDays 时得 Points 分
type AgeTier struct {
	MaxDays float64 `yaml:"max_days"`
	Points  int     `yaml:"points"`
}

// NoInteractionConfig 无互动数据时基于内容的估算规则
type NoInteractionConfig struct {
	Base              int `yaml:"base"`
	KeywordThreshold  int `yaml:"keyword_threshold"`
	KeywordBonus      int `yaml:"keyword_bonus"`
	PositiveToneBonus int `yaml:"positive_tone_bonus"`
	// 正文长度按字数分档，">2000" 写作 Min: 2001
	LengthTiers TierTable `yaml:"length"`
}

// Config 热度指数的全部权重表，通过 NewScorer 注入
type Config struct {
	Volume    TierTable `yaml:"volume"`
	VolumeCap int       `yaml:"volume_cap"`

	LikeRate      TierTable `yaml:"like_rate"`
	ShareRate     TierTable `yaml:"share_rate"`
	EngagementCap int       `yaml:"engagement_cap"`

	CuratedKeywords  []string `yaml:"curated_keywords"`
	PointsPerKeyword int      `yaml:"points_per_keyword"`
	ContentCap       int      `yaml:"content_cap"`

	Freshness    []AgeTier `yaml:"freshness"`
	FreshnessCap int       `yaml:"freshness_cap"`

	NoInteraction NoInteractionConfig `yaml:"no_interaction"`
	Tone          ToneConfig          `yaml:"tone"`

	MaxScore int `yaml:"max_score"`
}

func DefaultConfig() Config {
	return Config{
		Volume: TierTable{Tiers: []Tier{
			{Min: 100000, Points: 50},
			{Min: 50000, Points: 40},
			{Min: 20000, Points: 30},
			{Min: 10000, Points: 20},
			{Min: 5000, Points: 10},
		}},
		VolumeCap: 50,

		LikeRate: TierTable{Tiers: []Tier{
			{Min: 0.05, Points: 20},
			{Min: 0.03, Points: 15},
			{Min: 0.02, Points: 10},
		}, Default: 5},
		ShareRate: TierTable{Tiers: []Tier{
			{Min: 0.01, Points: 10},
			{Min: 0.005, Points: 7},
			{Min: 0.003, Points: 5},
		}},
		EngagementCap: 30,

		CuratedKeywords:  DefaultCuratedKeywords(),
		PointsPerKeyword: 2,
		ContentCap:       15,

		Freshness: []AgeTier{
			{MaxDays: 1, Points: 5},
			{MaxDays: 3, Points: 3},
			{MaxDays: 7, Points: 1},
		},
		FreshnessCap: 5,

		NoInteraction: NoInteractionConfig{
			Base:              30,
			KeywordThreshold:  5,
			KeywordBonus:      10,
			PositiveToneBonus: 10,
			LengthTiers: TierTable{Tiers: []Tier{
				{Min: 2001, Points: 15},
				{Min: 1001, Points: 10},
			}, Default: 5},
		},
		Tone: DefaultToneConfig(),

		MaxScore: 100,
	}
}

// DefaultCuratedKeywords 标题中出现即视为高价值内容的词
func DefaultCuratedKeywords() []string {
	return []string{
		"重磅", "独家", "首发", "突发", "官宣", "深度", "揭秘", "干货", "盘点", "解读",
		"首次", "最新", "大模型", "芯片", "融资", "上市", "IPO", "CEO", "AI", "GPT",
		"OpenAI", "英伟达", "华为", "苹果", "特斯拉", "马斯克",
	}
}
