package main

import (
	"context"
	"flag"
	"time"

	"github.com/LJTian/ArticleInsight/internal/config"
	"github.com/LJTian/ArticleInsight/internal/logging"
	"github.com/LJTian/ArticleInsight/internal/scheduler"
	"github.com/LJTian/ArticleInsight/internal/storage"
	"github.com/joho/godotenv"
)

// 仅执行一次重算任务的命令行入口：适合手动触发或外部定时器调用
func main() {
	limit := flag.Int("limit", 0, "读取的文章上限，0 表示默认值")
	timeout := flag.Duration("timeout", 5*time.Minute, "任务超时")
	flag.Parse()

	_ = godotenv.Load()

	cfg := config.Load()
	logging.Init(cfg.LogLevel)

	analysis, err := config.LoadAnalysis(cfg.AnalysisConfigPath)
	if err != nil {
		logging.Fatal("load analysis config failed", "err", err)
	}

	store, err := storage.NewStore(cfg.PostgresDSN, cfg.RedisAddr)
	if err != nil {
		logging.Fatal("init store failed", "err", err)
	}

	// 与 cmd/api 使用同一调度器，只执行一轮后退出
	s, err := scheduler.New(cfg.CronSpec, analysis.NewAnalyzer(), store, *limit)
	if err != nil {
		logging.Fatal("init scheduler failed", "err", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()
	report, err := s.RunOnce(ctx)
	if err != nil {
		logging.Fatal("rescore failed", "err", err)
	}
	if report != nil {
		logging.Info("rescore finished", "report", report.ID, "insights", len(report.Insights))
	}
}
