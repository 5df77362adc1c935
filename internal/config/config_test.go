package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/LJTian/ArticleInsight/internal/keyword"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetEnvWithDefault(t *testing.T) {
	const key = "TEST_APP_PORT"

	// 环境变量未设置时，应该返回默认值
	t.Setenv(key, "")
	assert.Equal(t, "9000", getEnv(key, "9000"))

	// 环境变量设置后，应优先返回环境变量
	t.Setenv(key, "8080")
	assert.Equal(t, "8080", getEnv(key, "9000"))
}

func TestLoadReadsAuthAndPorts(t *testing.T) {
	t.Setenv("APP_PORT", "1234")
	t.Setenv("APP_BASIC_USER", "user")
	t.Setenv("APP_BASIC_PASS", "pass")
	t.Setenv("ANALYSIS_CONFIG", "/tmp/analysis.yaml")

	cfg := Load()
	assert.Equal(t, "1234", cfg.AppPort)
	assert.Equal(t, "user", cfg.BasicAuthUser)
	assert.Equal(t, "pass", cfg.BasicAuthPass)
	assert.Equal(t, "/tmp/analysis.yaml", cfg.AnalysisConfigPath)
	assert.Equal(t, "*/30 * * * *", cfg.CronSpec)
}

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "analysis.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadAnalysisDefaults(t *testing.T) {
	cfg, err := LoadAnalysis("")
	require.NoError(t, err)
	assert.Equal(t, DefaultAnalysis(), cfg)
	assert.NoError(t, cfg.Validate())
}

func TestLoadAnalysisOverrides(t *testing.T) {
	path := writeFile(t, `
keyword:
  backend: frequency
  stop_words: ["芯片"]
scoring:
  curated_keywords: ["Go"]
  points_per_keyword: 5
batch:
  workers: 2
top_accounts: 3
`)
	cfg, err := LoadAnalysis(path)
	require.NoError(t, err)

	assert.Equal(t, keyword.BackendFrequency, cfg.Keyword.Backend)
	assert.Equal(t, []string{"芯片"}, cfg.Keyword.StopWords)
	assert.Equal(t, []string{"Go"}, cfg.Scoring.CuratedKeywords)
	assert.Equal(t, 5, cfg.Scoring.PointsPerKeyword)
	assert.Equal(t, 2, cfg.Batch.Workers)
	assert.Equal(t, 3, cfg.TopAccounts)
	// 未出现的字段保持默认
	assert.Equal(t, 50, cfg.Scoring.VolumeCap)
	assert.Equal(t, 10, cfg.Batch.ArticleKeywords)

	a := cfg.NewAnalyzer()
	require.NotNil(t, a)
}

func TestLoadAnalysisErrors(t *testing.T) {
	_, err := LoadAnalysis(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = LoadAnalysis(writeFile(t, "keyword: [broken"))
	assert.Error(t, err)

	_, err = LoadAnalysis(writeFile(t, "keyword:\n  backend: jieba\n"))
	assert.ErrorContains(t, err, "keyword.backend")

	_, err = LoadAnalysis(writeFile(t, "batch:\n  workers: 0\n"))
	assert.ErrorContains(t, err, "workers")

	_, err = LoadAnalysis(writeFile(t, `
scoring:
  volume:
    tiers:
      - {min: 10, points: 1}
      - {min: 20, points: 2}
`))
	assert.ErrorContains(t, err, "volume")
}
