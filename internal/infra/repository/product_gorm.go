package repository

import (
	"context"
	"errors"
	"strings"

	"catalogo/internal/domain/model"
	repo "catalogo/internal/repository"

	"gorm.io/gorm"
)

type ProductGormRepository struct {
	db *gorm.DB
}

// DI
func NewProductGormRepository(db *gorm.DB) *ProductGormRepository {
	return &ProductGormRepository{db: db}
}

// 公開商品のみを、絞り込み/ソート/ページング付きで返す。
func (r *ProductGormRepository) ListPublic(ctx context.Context, q repo.ProductListQuery) ([]model.Product, int64, error) {
	var products []model.Product
	var total int64

	tx := r.db.WithContext(ctx).Model(&model.Product{})

	// 公開（is_active=true）かつ該当カタログのものだけ
	tx = tx.Where("catalog_id = ? AND is_active = ?", q.CatalogID, true)

	if q.CategoryID != nil {
		tx = tx.Where("category_id = ?", *q.CategoryID)
	}

	// q はnameを対象
	if strings.TrimSpace(q.Q) != "" {
		like := "%" + strings.TrimSpace(q.Q) + "%"
		tx = tx.Where("name ILIKE ?", like)
	}

	//価格帯
	if q.MinPrice != nil {
		tx = tx.Where("price >= ?", *q.MinPrice)
	}
	if q.MaxPrice != nil {
		tx = tx.Where("price <= ?", *q.MaxPrice)
	}

	if q.IsFeatured != nil {
		tx = tx.Where("is_featured = ?", *q.IsFeatured)
	}

	if q.InStock {
		tx = tx.Where("stock > ?", 0)
	}

	//total（件数）
	if err := tx.Count(&total).Error; err != nil {
		return []model.Product{}, 0, err
	}

	//sort
	switch q.Sort {
	case "price_asc":
		tx = tx.Order("price asc").Order("id asc")
	case "price_desc":
		tx = tx.Order("price desc").Order("id desc")
	case "name":
		tx = tx.Order("name asc").Order("id asc")
	default:
		tx = tx.Order("sort_order asc").Order("created_at desc").Order("id desc")
	}

	offset := (q.Page - 1) * q.Limit
	if err := tx.Offset(offset).Limit(q.Limit).Find(&products).Error; err != nil {
		return []model.Product{}, 0, err
	}

	return products, total, nil
}

// 管理画面用。非公開も含めて返す。
func (r *ProductGormRepository) ListAdmin(ctx context.Context, q repo.ProductListQuery) ([]model.Product, int64, error) {
	var products []model.Product
	var total int64

	tx := r.db.WithContext(ctx).Model(&model.Product{}).
		Where("catalog_id = ?", q.CatalogID)

	if strings.TrimSpace(q.Q) != "" {
		like := "%" + strings.TrimSpace(q.Q) + "%"
		tx = tx.Where("name ILIKE ?", like)
	}

	if err := tx.Count(&total).Error; err != nil {
		return []model.Product{}, 0, err
	}

	switch q.Sort {
	case "name":
		tx = tx.Order("name asc").Order("id asc")
	default:
		tx = tx.Order("sort_order asc").Order("created_at desc").Order("id desc")
	}

	offset := (q.Page - 1) * q.Limit
	if err := tx.Offset(offset).Limit(q.Limit).Find(&products).Error; err != nil {
		return []model.Product{}, 0, err
	}

	return products, total, nil
}

// 名前の部分一致検索（名前昇順）
func (r *ProductGormRepository) Search(ctx context.Context, catalogID int64, term string) ([]model.Product, error) {
	var products []model.Product

	like := "%" + strings.TrimSpace(term) + "%"
	err := r.db.WithContext(ctx).
		Where("catalog_id = ? AND is_active = ?", catalogID, true).
		Where("name ILIKE ?", like).
		Order("name asc").
		Find(&products).Error

	if err != nil {
		return []model.Product{}, err
	}
	return products, nil
}

// IDで商品を取得
func (r *ProductGormRepository) FindByID(ctx context.Context, catalogID int64, id int64) (model.Product, error) {
	var p model.Product
	err := r.db.WithContext(ctx).
		Where("catalog_id = ?", catalogID).
		First(&p, id).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Product{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Product{}, err
	}
	return p, nil
}

// slugで商品を取得
func (r *ProductGormRepository) FindBySlug(ctx context.Context, catalogID int64, slug string) (model.Product, error) {
	var p model.Product
	err := r.db.WithContext(ctx).
		Where("catalog_id = ? AND slug = ?", catalogID, slug).
		First(&p).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Product{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Product{}, err
	}
	return p, nil
}

// 商品の作成
func (r *ProductGormRepository) Create(ctx context.Context, p model.Product) (model.Product, error) {
	if err := r.db.WithContext(ctx).Create(&p).Error; err != nil {
		return model.Product{}, err
	}
	return p, nil
}

// 商品の更新
func (r *ProductGormRepository) Update(ctx context.Context, p model.Product) error {
	res := r.db.WithContext(ctx).Model(&model.Product{}).
		Where("id = ? AND catalog_id = ?", p.ID, p.CatalogID).
		Updates(map[string]interface{}{
			"name":               p.Name,
			"slug":               p.Slug,
			"description":        p.Description,
			"price":              p.Price,
			"discount":           p.Discount,
			"stock":              p.Stock,
			"presentation":       p.Presentation,
			"featured_image_url": p.FeaturedImageURL,
			"category_id":        p.CategoryID,
			"is_featured":        p.IsFeatured,
			"is_active":          p.IsActive,
			"sort_order":         p.SortOrder,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

// 公開/非公開の切り替え
func (r *ProductGormRepository) SetActive(ctx context.Context, catalogID int64, id int64, isActive bool) error {
	res := r.db.WithContext(ctx).Model(&model.Product{}).
		Where("id = ? AND catalog_id = ?", id, catalogID).
		Update("is_active", isActive)

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

// 論理削除
func (r *ProductGormRepository) SoftDelete(ctx context.Context, catalogID int64, id int64) error {
	res := r.db.WithContext(ctx).
		Where("catalog_id = ?", catalogID).
		Delete(&model.Product{}, id)

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
