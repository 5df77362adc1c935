package main

import (
	"github.com/LJTian/ArticleInsight/internal/api"
	"github.com/LJTian/ArticleInsight/internal/config"
	"github.com/LJTian/ArticleInsight/internal/logging"
	"github.com/LJTian/ArticleInsight/internal/scheduler"
	"github.com/LJTian/ArticleInsight/internal/storage"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// .env 不存在时忽略，直接使用环境变量
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

	analyzer := analysis.NewAnalyzer()

	// 定时重算已入库文章的热度并生成新报告
	s, err := scheduler.New(cfg.CronSpec, analyzer, store, 0)
	if err != nil {
		logging.Fatal("init scheduler failed", "err", err)
	}
	s.Start()
	defer s.Stop()

	// API
	r := gin.Default()
	// 若配置了全局访问密码，则启用 Basic Auth 保护（/health 仍然免认证）
	if cfg.BasicAuthUser != "" && cfg.BasicAuthPass != "" {
		r.Use(api.BasicAuth(cfg.BasicAuthUser, cfg.BasicAuthPass))
	}

	apiServer := api.NewServer(store, analyzer, analysis.NewScorer())
	apiServer.RegisterRoutes(r)

	addr := ":" + cfg.AppPort
	logging.Info("starting api server", "addr", addr)
	if err := r.Run(addr); err != nil {
		logging.Fatal("server exit", "err", err)
	}
}
