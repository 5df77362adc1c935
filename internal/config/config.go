package config

import (
	"os"

	"github.com/LJTian/ArticleInsight/internal/logging"
)

type Config struct {
	AppPort string

	PostgresDSN string
	RedisAddr   string

	CronSpec string
	LogLevel string

	// AnalysisConfigPath 可选的 YAML 文件，覆盖打分权重、停用词等
	AnalysisConfigPath string

	BasicAuthUser string
	BasicAuthPass string
}

func Load() *Config {
	cfg := &Config{
		AppPort:            getEnv("APP_PORT", "9000"),
		PostgresDSN:        getEnv("POSTGRES_DSN", "host=localhost user=insight password=insight dbname=insight port=5432 sslmode=disable TimeZone=UTC"),
		RedisAddr:          getEnv("REDIS_ADDR", "localhost:6380"),
		CronSpec:           getEnv("CRON_SPEC", "*/30 * * * *"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		AnalysisConfigPath: os.Getenv("ANALYSIS_CONFIG"),
		BasicAuthUser:      os.Getenv("APP_BASIC_USER"),
		BasicAuthPass:      os.Getenv("APP_BASIC_PASS"),
	}

	logging.Info("config loaded", "port", cfg.AppPort, "cron", cfg.CronSpec, "analysis", cfg.AnalysisConfigPath)
	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
