package article

import (
	"strings"
	"time"
	"unicode/utf8"
)

// DataSource 标记互动数据的来源
type DataSource string

const (
	SourceAPI       DataSource = "api"
	SourceSimulated DataSource = "simulated"
	SourceMissing   DataSource = "missing"
)

// InteractionMetrics 单篇文章的互动数据，由外部数据接口提供。
// 所有计数按约定均为非负数。
type InteractionMetrics struct {
	ReadCount    int64      `json:"readCount"`
	LikeCount    int64      `json:"likeCount"`
	ShareCount   int64      `json:"shareCount"`
	CollectCount int64      `json:"collectCount"`
	CommentCount int64      `json:"commentCount"`
	Source       DataSource `json:"source"`
}

// Clamped 返回负数计数归零后的副本
func (m InteractionMetrics) Clamped() InteractionMetrics {
	m.ReadCount = clampCount(m.ReadCount)
	m.LikeCount = clampCount(m.LikeCount)
	m.ShareCount = clampCount(m.ShareCount)
	m.CollectCount = clampCount(m.CollectCount)
	m.CommentCount = clampCount(m.CommentCount)
	if m.Source == "" {
		m.Source = SourceAPI
	}
	return m
}

// 各类比率仅在阅读数 > 0 时有意义，否则为 0
func (m InteractionMetrics) LikeRate() float64    { return m.rate(m.LikeCount) }
func (m InteractionMetrics) ShareRate() float64   { return m.rate(m.ShareCount) }
func (m InteractionMetrics) CollectRate() float64 { return m.rate(m.CollectCount) }
func (m InteractionMetrics) CommentRate() float64 { return m.rate(m.CommentCount) }

func (m InteractionMetrics) rate(n int64) float64 {
	if m.ReadCount <= 0 {
		return 0
	}
	return float64(clampCount(n)) / float64(m.ReadCount)
}

func clampCount(n int64) int64 {
	if n < 0 {
		return 0
	}
	return n
}

// Record 一篇公众号文章，由外部采集方创建，分析流程只读不写
type Record struct {
	ID          string              `json:"id"`
	Title       string              `json:"title"`
	Account     string              `json:"account"`
	URL         string              `json:"url,omitempty"`
	Content     string              `json:"content"`
	PublishedAt *time.Time          `json:"publishedAt,omitempty"`
	Metrics     *InteractionMetrics `json:"metrics,omitempty"`
}

// ContentLength 按 rune 计算正文长度，中文一个字算 1
func (r Record) ContentLength() int {
	return utf8.RuneCountInString(r.Content)
}

// AccountName 缺失公众号名称时返回统一占位
func (r Record) AccountName() string {
	if name := strings.TrimSpace(r.Account); name != "" {
		return name
	}
	return UnknownAccount
}

// UnknownAccount 未填写公众号名称时的占位
const UnknownAccount = "未知公众号"

// Keyword 带权重的词
type Keyword struct {
	Term   string  `json:"term"`
	Weight float64 `json:"weight"`
}

// Ref 文章的精简引用（标题 + 公众号）
type Ref struct {
	Title   string `json:"title"`
	Account string `json:"account"`
}

// Topic 由关键词提升而来的话题
type Topic struct {
	Keyword      string `json:"keyword"`
	ArticleCount int    `json:"articleCount"`
	Samples      []Ref  `json:"samples"`
}

// AccountCount 公众号及其文章数
type AccountCount struct {
	Account string `json:"account"`
	Count   int    `json:"count"`
}

// TimeRange 一批文章的发布时间跨度
type TimeRange struct {
	Earliest time.Time `json:"earliest"`
	Latest   time.Time `json:"latest"`
}

// InteractionSummary 带互动数据文章的汇总
type InteractionSummary struct {
	ArticlesWithMetrics int                `json:"articlesWithMetrics"`
	TotalReads          int64              `json:"totalReads"`
	TotalLikes          int64              `json:"totalLikes"`
	TotalShares         int64              `json:"totalShares"`
	TotalCollects       int64              `json:"totalCollects"`
	TotalComments       int64              `json:"totalComments"`
	AvgLikeRate         float64            `json:"avgLikeRate"`
	AvgShareRate        float64            `json:"avgShareRate"`
	SourceBreakdown     map[DataSource]int `json:"sourceBreakdown"`
	Best                *BestArticle       `json:"best,omitempty"`
}

// BestArticle 阅读量最高的文章
type BestArticle struct {
	Ref
	ReadCount int64 `json:"readCount"`
}

// BatchStatistics 一批文章的统计结果
type BatchStatistics struct {
	TotalArticles       int                 `json:"totalArticles"`
	TotalAccounts       int                 `json:"totalAccounts"`
	TopAccounts         []AccountCount      `json:"topAccounts"`
	AvgContentLength    float64             `json:"avgContentLength"`
	MedianContentLength float64             `json:"medianContentLength"`
	MinContentLength    int                 `json:"minContentLength"`
	MaxContentLength    int                 `json:"maxContentLength"`
	TimeRange           *TimeRange          `json:"timeRange,omitempty"`
	Interaction         *InteractionSummary `json:"interaction,omitempty"`
}
