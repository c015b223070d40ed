package repository

import (
	"catalogo/internal/domain/model"
	"context"
)

// ページ別の訪問数
type VisitSummary struct {
	Page   string `json:"page"`
	Visits int64  `json:"visits"`
}

type VisitRepository interface {
	// 同じ訪問者×ページ×日の記録が既にあるか
	ExistsForDay(ctx context.Context, catalogID int64, visitorID string, page string, day string) (bool, error)
	Create(ctx context.Context, v model.SiteVisit) error
	SummaryByPage(ctx context.Context, catalogID int64) ([]VisitSummary, error)
}
