package config

import (
	"fmt"
	"os"

	"github.com/LJTian/ArticleInsight/internal/insight"
	"github.com/LJTian/ArticleInsight/internal/keyword"
	"github.com/LJTian/ArticleInsight/internal/processor"
	"github.com/LJTian/ArticleInsight/internal/scoring"
	"github.com/LJTian/ArticleInsight/internal/stats"
	"gopkg.in/yaml.v3"
)

// Analysis 分析流程的全部可调参数，YAML 中未出现的字段沿用默认值
type Analysis struct {
	Keyword     keyword.Config    `yaml:"keyword"`
	Scoring     scoring.Config    `yaml:"scoring"`
	Insight     insight.Config    `yaml:"insight"`
	Batch       processor.Options `yaml:"batch"`
	TopAccounts int               `yaml:"top_accounts"`
}

func DefaultAnalysis() Analysis {
	return Analysis{
		Keyword:     keyword.DefaultConfig(),
		Scoring:     scoring.DefaultConfig(),
		Insight:     insight.DefaultConfig(),
		Batch:       processor.DefaultOptions(),
		TopAccounts: stats.DefaultTopN,
	}
}

// LoadAnalysis path 为空时直接返回默认值
func LoadAnalysis(path string) (Analysis, error) {
	cfg := DefaultAnalysis()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Analysis{}, fmt.Errorf("reading analysis config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Analysis{}, fmt.Errorf("parsing analysis config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Analysis{}, err
	}
	return cfg, nil
}

// Validate 检查取值范围与档位顺序
func (a *Analysis) Validate() error {
	switch a.Keyword.Backend {
	case keyword.BackendAuto, keyword.BackendSegmenter, keyword.BackendFrequency:
	default:
		return fmt.Errorf("keyword.backend must be auto, segmenter or frequency, got %q", a.Keyword.Backend)
	}
	if a.Batch.ArticleKeywords < 0 || a.Batch.BatchKeywords < 0 {
		return fmt.Errorf("batch keyword counts must be >= 0")
	}
	if a.Batch.Workers <= 0 {
		return fmt.Errorf("batch.workers must be > 0, got %d", a.Batch.Workers)
	}
	if a.Scoring.MaxScore <= 0 || a.Scoring.MaxScore > 100 {
		return fmt.Errorf("scoring.max_score must be in (0, 100], got %d", a.Scoring.MaxScore)
	}
	tables := map[string]scoring.TierTable{
		"volume":     a.Scoring.Volume,
		"like_rate":  a.Scoring.LikeRate,
		"share_rate": a.Scoring.ShareRate,
		"length":     a.Scoring.NoInteraction.LengthTiers,
	}
	for name, table := range tables {
		for i := 1; i < len(table.Tiers); i++ {
			if table.Tiers[i].Min > table.Tiers[i-1].Min {
				return fmt.Errorf("scoring.%s tiers must be sorted by min descending", name)
			}
		}
	}
	for i := 1; i < len(a.Scoring.Freshness); i++ {
		if a.Scoring.Freshness[i].MaxDays < a.Scoring.Freshness[i-1].MaxDays {
			return fmt.Errorf("scoring.freshness tiers must be sorted by max_days ascending")
		}
	}
	return nil
}

// NewAnalyzer 按配置组装分析流程；分词器在此处做一次能力探测
func (a Analysis) NewAnalyzer() *processor.Analyzer {
	return processor.NewAnalyzer(
		keyword.New(a.Keyword),
		a.NewScorer(),
		scoring.NewToneClassifier(a.Scoring.Tone),
		stats.NewAggregator(a.TopAccounts),
		insight.NewGenerator(a.Insight),
		a.Batch,
	)
}

func (a Analysis) NewScorer() *scoring.Scorer {
	return scoring.NewScorer(a.Scoring)
}
