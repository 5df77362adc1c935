package storage

import (
	"strings"
	"time"

	"github.com/LJTian/ArticleInsight/internal/article"
	"github.com/LJTian/ArticleInsight/internal/processor"
	"github.com/LJTian/ArticleInsight/internal/scoring"
	"gorm.io/datatypes"
)

// Article 文章及最近一次分析结果
type Article struct {
	ID      string `gorm:"primaryKey;size:64" json:"id"`
	Title   string `gorm:"size:512" json:"title"`
	Account string `gorm:"size:128;index" json:"account"`
	URL     string `gorm:"size:1024" json:"url"`
	Content string `gorm:"type:text" json:"content"`
	// 可为空：无发布时间的文章不参与时间跨度统计
	PublishedAt   *time.Time `gorm:"index" json:"publishedAt"`
	PublishedDate string     `gorm:"size:10;index" json:"publishedDate"` // 日期 YYYY-MM-DD，用于按日期展示

	Metrics  datatypes.JSONType[*article.InteractionMetrics] `json:"metrics"`
	Keywords datatypes.JSONSlice[article.Keyword]            `json:"keywords"`
	Tone     string                                          `gorm:"size:16" json:"tone"`
	HotIndex int                                             `gorm:"index" json:"hotIndex"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Report 批量分析报告，完整内容以 JSON 保存
type Report struct {
	ID           string         `gorm:"primaryKey;size:36" json:"id"`
	GeneratedAt  time.Time      `gorm:"index" json:"generatedAt"`
	Extractor    string         `gorm:"size:32" json:"extractor"`
	ArticleCount int            `json:"articleCount"`
	Payload      datatypes.JSON `gorm:"type:jsonb" json:"payload"`

	CreatedAt time.Time `json:"createdAt"`
}

// 东八区，用于日期展示与筛选
var locEast8 *time.Location

func init() {
	locEast8, _ = time.LoadLocation("Asia/Shanghai")
	if locEast8 == nil {
		locEast8 = time.FixedZone("CST", 8*3600)
	}
}

// toValidUTF8 将字符串规范为合法 UTF-8，避免 PostgreSQL invalid byte sequence 错误
func toValidUTF8(s string) string {
	return strings.ToValidUTF8(s, "�")
}

// truncateRunesDB 按 rune 数截断字符串，确保不会超过数据库字段长度
func truncateRunesDB(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	s = strings.TrimSpace(s)
	rs := []rune(s)
	if len(rs) <= limit {
		return s
	}
	return string(rs[:limit])
}

func publishedDate(t *time.Time) string {
	if t == nil || t.IsZero() {
		return ""
	}
	return t.In(locEast8).Format("2006-01-02")
}

// toRow 分析结果转为表记录
func toRow(it processor.ArticleInsight) Article {
	return Article{
		ID:            it.ID,
		Title:         truncateRunesDB(toValidUTF8(it.Title), 512),
		Account:       truncateRunesDB(toValidUTF8(it.AccountName()), 128),
		URL:           truncateRunesDB(it.URL, 1024),
		Content:       toValidUTF8(it.Content),
		PublishedAt:   it.PublishedAt,
		PublishedDate: publishedDate(it.PublishedAt),
		Metrics:       datatypes.NewJSONType(it.Metrics),
		Keywords:      datatypes.NewJSONSlice(it.Keywords),
		Tone:          string(it.Tone),
		HotIndex:      it.Score.HotIndex,
	}
}

// Record 还原为分析输入
func (a Article) Record() article.Record {
	return article.Record{
		ID:          a.ID,
		Title:       a.Title,
		Account:     a.Account,
		URL:         a.URL,
		Content:     a.Content,
		PublishedAt: a.PublishedAt,
		Metrics:     a.Metrics.Data(),
	}
}

// Insight 表记录转为分析结果（分项得分不落库，仅保留总分）
func (a Article) Insight() processor.ArticleInsight {
	return processor.ArticleInsight{
		Record:   a.Record(),
		Keywords: []article.Keyword(a.Keywords),
		Tone:     scoring.Tone(a.Tone),
		Score: scoring.Result{
			HotIndex:       a.HotIndex,
			HasInteraction: a.Metrics.Data() != nil && a.Metrics.Data().Source != article.SourceMissing,
		},
	}
}
