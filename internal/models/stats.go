package models

import "time"

// ArticleStats — строка аналитики по одной статье.
type ArticleStats struct {
	ID     string    `json:"id"`
	Title  string    `json:"title"`
	Author string    `json:"author"`
	Date   time.Time `json:"date"`
	Views  int64     `json:"views"`
	Likes  int64     `json:"likes"`
	Shares int64     `json:"shares"`
}

// PageTraffic доступен только владельцу.
type PageTraffic struct {
	TotalPageViews int64 `json:"total_page_views"`
	UniqueVisitors int64 `json:"unique_visitors"`
	ArticlesCount  int   `json:"articles_count"`
}

type AnalyticsSummary struct {
	Articles    []ArticleStats `json:"articles"`
	TotalViews  int64          `json:"total_views"`
	TotalLikes  int64          `json:"total_likes"`
	TotalShares int64          `json:"total_shares"`
	PageTraffic *PageTraffic   `json:"page_traffic,omitempty"`
}
