package main

import (
	"slices"

	"github.com/LJTian/ArticleInsight/internal/processor"
	"github.com/LJTian/ArticleInsight/internal/scoring"
	"github.com/spf13/cobra"
)

// scoreLine score 子命令每篇文章一行
type scoreLine struct {
	ID        string            `json:"id"`
	Title     string            `json:"title"`
	Account   string            `json:"account"`
	HotIndex  int               `json:"hotIndex"`
	Breakdown scoring.Breakdown `json:"breakdown"`
	Tone      scoring.Tone      `json:"tone"`
	Keywords  []string          `json:"keywords,omitempty"`
}

func newScoreCmd(opts *options) *cobra.Command {
	var sortHot bool
	cmd := &cobra.Command{
		Use:   "score",
		Short: "逐篇计算热度指数",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadAnalysis()
			if err != nil {
				return err
			}
			recs, err := opts.loadInput(cmd.InOrStdin())
			if err != nil {
				return err
			}

			analyzer := cfg.NewAnalyzer()
			lines := make([]scoreLine, 0, len(recs))
			for _, rec := range processor.Normalize(recs) {
				lines = append(lines, toScoreLine(analyzer.ScoreOne(rec)))
			}
			if sortHot {
				slices.SortStableFunc(lines, func(a, b scoreLine) int {
					return b.HotIndex - a.HotIndex
				})
			}
			return opts.writeJSON(cmd.OutOrStdout(), lines)
		},
	}
	cmd.Flags().BoolVar(&sortHot, "sort-hot", false, "按热度降序输出")
	return cmd
}

func toScoreLine(it processor.ArticleInsight) scoreLine {
	terms := make([]string, 0, len(it.Keywords))
	for _, k := range it.Keywords {
		terms = append(terms, k.Term)
	}
	return scoreLine{
		ID:        it.ID,
		Title:     it.Title,
		Account:   it.AccountName(),
		HotIndex:  it.Score.HotIndex,
		Breakdown: it.Score.Breakdown,
		Tone:      it.Tone,
		Keywords:  terms,
	}
}
