package main

import (
	"github.com/spf13/cobra"
)

func newReportCmd(opts *options) *cobra.Command {
	var (
		topK    int
		workers int
	)
	cmd := &cobra.Command{
		Use:   "report",
		Short: "生成批量分析报告",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadAnalysis()
			if err != nil {
				return err
			}
			if topK > 0 {
				cfg.Batch.BatchKeywords = topK
			}
			if workers > 0 {
				cfg.Batch.Workers = workers
			}

			recs, err := opts.loadInput(cmd.InOrStdin())
			if err != nil {
				return err
			}
			report, err := cfg.NewAnalyzer().Analyze(cmd.Context(), recs)
			if err != nil {
				return err
			}
			return opts.writeJSON(cmd.OutOrStdout(), report)
		},
	}
	cmd.Flags().IntVarP(&topK, "top-k", "k", 0, "批次关键词数量，0 使用配置值")
	cmd.Flags().IntVar(&workers, "workers", 0, "并发数，0 使用配置值")
	return cmd
}
