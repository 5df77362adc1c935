package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/LJTian/ArticleInsight/internal/article"
	"github.com/LJTian/ArticleInsight/internal/config"
	"github.com/LJTian/ArticleInsight/internal/logging"
	"github.com/LJTian/ArticleInsight/internal/simulate"
	"github.com/spf13/cobra"
)

type options struct {
	input      string
	configPath string
	logLevel   string
	simulate   bool
	seed       uint64
	pretty     bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "insight",
		Short: "公众号文章热度打分与批量洞察",
		Long: `insight 读取 JSON 数组格式的文章列表，计算热度指数、关键词、话题与统计洞察。

示例:
  insight report -i articles.json            # 完整批量报告
  insight report -i articles.json --simulate # 缺少互动数据时使用模拟数据
  insight score -i - < articles.json         # 仅输出每篇文章的热度`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.Init(opts.logLevel)
			logging.SetOutput(cmd.ErrOrStderr())
		},
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&opts.input, "input", "i", "-", "文章 JSON 文件，- 表示标准输入")
	pf.StringVarP(&opts.configPath, "config", "c", os.Getenv("ANALYSIS_CONFIG"), "分析参数 YAML 文件")
	pf.StringVar(&opts.logLevel, "log-level", "warn", "日志级别 debug/info/warn/error")
	pf.BoolVar(&opts.simulate, "simulate", false, "为缺少互动数据的文章生成模拟数据")
	pf.Uint64Var(&opts.seed, "seed", 1, "模拟数据随机种子")
	pf.BoolVar(&opts.pretty, "pretty", true, "缩进输出 JSON")

	root.AddCommand(newReportCmd(opts), newScoreCmd(opts))
	return root
}

// loadInput 读取文章并按需补充模拟互动数据
func (o *options) loadInput(stdin io.Reader) ([]article.Record, error) {
	var (
		recs []article.Record
		err  error
	)
	if o.input == "-" {
		recs, err = article.DecodeJSON(stdin)
	} else {
		recs, err = article.LoadFile(o.input)
	}
	if err != nil {
		return nil, err
	}
	if o.simulate {
		recs = simulate.New(o.seed).Fill(recs)
	}
	return recs, nil
}

func (o *options) loadAnalysis() (config.Analysis, error) {
	cfg, err := config.LoadAnalysis(o.configPath)
	if err != nil {
		return config.Analysis{}, fmt.Errorf("load analysis config: %w", err)
	}
	return cfg, nil
}

func (o *options) writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	if o.pretty {
		enc.SetIndent("", "  ")
	}
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
