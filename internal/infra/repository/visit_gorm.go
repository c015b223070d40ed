package repository

import (
	"context"

	"catalogo/internal/domain/model"
	repo "catalogo/internal/repository"

	"gorm.io/gorm"
)

type VisitGormRepository struct {
	db *gorm.DB
}

// DI
func NewVisitGormRepository(db *gorm.DB) *VisitGormRepository {
	return &VisitGormRepository{db: db}
}

// 同じ訪問者×ページ×日の記録が既にあるか
func (r *VisitGormRepository) ExistsForDay(ctx context.Context, catalogID int64, visitorID string, page string, day string) (bool, error) {
	var count int64

	err := r.db.WithContext(ctx).
		Model(&model.SiteVisit{}).
		Where("catalog_id = ? AND visitor_id = ? AND page = ? AND visited_on = ?", catalogID, visitorID, page, day).
		Count(&count).Error

	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *VisitGormRepository) Create(ctx context.Context, v model.SiteVisit) error {
	if err := r.db.WithContext(ctx).Create(&v).Error; err != nil {
		return err
	}
	return nil
}

// ページ別の訪問数を多い順で返す
func (r *VisitGormRepository) SummaryByPage(ctx context.Context, catalogID int64) ([]repo.VisitSummary, error) {
	var rows []repo.VisitSummary

	err := r.db.WithContext(ctx).
		Model(&model.SiteVisit{}).
		Select("page, count(*) as visits").
		Where("catalog_id = ?", catalogID).
		Group("page").
		Order("visits desc").
		Scan(&rows).Error

	if err != nil {
		return []repo.VisitSummary{}, err
	}
	return rows, nil
}
