package model

import "time"

// ページ閲覧の記録。同じ訪問者×ページは1日1回だけ記録する。
type SiteVisit struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	CatalogID int64     `gorm:"not null;index" json:"catalog_id"`
	VisitorID string    `gorm:"type:varchar(64);not null;index" json:"visitor_id"`
	Page      string    `gorm:"type:varchar(100);not null" json:"page"`
	UserAgent string    `gorm:"type:varchar(500)" json:"user_agent"`
	VisitedOn string    `gorm:"type:varchar(10);not null;index" json:"visited_on"` // YYYY-MM-DD
	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}
