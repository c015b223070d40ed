package repository

import (
	"context"
	"errors"

	"catalogo/internal/domain/model"
	repo "catalogo/internal/repository"

	"gorm.io/gorm"
)

type CategoryGormRepository struct {
	db *gorm.DB
}

// DI
func NewCategoryGormRepository(db *gorm.DB) *CategoryGormRepository {
	return &CategoryGormRepository{db: db}
}

// 公開カテゴリをsort_order昇順で返す
func (r *CategoryGormRepository) ListPublic(ctx context.Context, catalogID int64) ([]model.Category, error) {
	var categories []model.Category

	err := r.db.WithContext(ctx).
		Where("catalog_id = ? AND is_active = ?", catalogID, true).
		Order("sort_order asc").Order("id asc").
		Find(&categories).Error

	if err != nil {
		return []model.Category{}, err
	}
	return categories, nil
}

// 管理画面用。非公開も含めて返す。
func (r *CategoryGormRepository) ListAll(ctx context.Context, catalogID int64) ([]model.Category, error) {
	var categories []model.Category

	err := r.db.WithContext(ctx).
		Where("catalog_id = ?", catalogID).
		Order("sort_order asc").Order("id asc").
		Find(&categories).Error

	if err != nil {
		return []model.Category{}, err
	}
	return categories, nil
}

func (r *CategoryGormRepository) FindByID(ctx context.Context, catalogID int64, id int64) (model.Category, error) {
	var c model.Category
	err := r.db.WithContext(ctx).
		Where("catalog_id = ?", catalogID).
		First(&c, id).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Category{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Category{}, err
	}
	return c, nil
}

func (r *CategoryGormRepository) Create(ctx context.Context, c model.Category) (model.Category, error) {
	if err := r.db.WithContext(ctx).Create(&c).Error; err != nil {
		return model.Category{}, err
	}
	return c, nil
}

func (r *CategoryGormRepository) Update(ctx context.Context, c model.Category) error {
	res := r.db.WithContext(ctx).Model(&model.Category{}).
		Where("id = ? AND catalog_id = ?", c.ID, c.CatalogID).
		Updates(map[string]interface{}{
			"name":        c.Name,
			"description": c.Description,
			"image_url":   c.ImageURL,
			"is_active":   c.IsActive,
			"sort_order":  c.SortOrder,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *CategoryGormRepository) DeleteByID(ctx context.Context, catalogID int64, id int64) error {
	res := r.db.WithContext(ctx).
		Where("catalog_id = ?", catalogID).
		Delete(&model.Category{}, id)

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
