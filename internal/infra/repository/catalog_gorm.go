package repository

import (
	"context"
	"errors"

	"catalogo/internal/domain/model"
	repo "catalogo/internal/repository"

	"gorm.io/gorm"
)

type CatalogGormRepository struct {
	db *gorm.DB
}

// DI
func NewCatalogGormRepository(db *gorm.DB) *CatalogGormRepository {
	return &CatalogGormRepository{db: db}
}

func (r *CatalogGormRepository) FindByID(ctx context.Context, id int64) (model.Catalog, error) {
	var c model.Catalog
	err := r.db.WithContext(ctx).First(&c, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Catalog{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Catalog{}, err
	}
	return c, nil
}

// 独自ドメインでカタログを探す
func (r *CatalogGormRepository) FindByCustomDomain(ctx context.Context, domain string) (model.Catalog, error) {
	var c model.Catalog
	err := r.db.WithContext(ctx).
		Where("custom_domain = ? AND is_active = ?", domain, true).
		First(&c).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Catalog{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Catalog{}, err
	}
	return c, nil
}

// サブドメインslugでカタログを探す
func (r *CatalogGormRepository) FindBySlug(ctx context.Context, slug string) (model.Catalog, error) {
	var c model.Catalog
	err := r.db.WithContext(ctx).
		Where("slug = ? AND is_active = ?", slug, true).
		First(&c).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Catalog{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Catalog{}, err
	}
	return c, nil
}

// カタログ設定の更新
func (r *CatalogGormRepository) Update(ctx context.Context, c model.Catalog) error {
	res := r.db.WithContext(ctx).Model(&model.Catalog{}).Where("id = ?", c.ID).Updates(map[string]interface{}{
		"name":            c.Name,
		"description":     c.Description,
		"logo_url":        c.LogoURL,
		"banner_url":      c.BannerURL,
		"primary_color":   c.PrimaryColor,
		"secondary_color": c.SecondaryColor,
		"whatsapp_number": c.WhatsappNumber,
		"instagram_user":  c.InstagramUser,
		"facebook_user":   c.FacebookUser,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
