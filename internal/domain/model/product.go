package model

import (
	"time"

	"gorm.io/gorm"
)

type Product struct {
	ID               int64          `gorm:"primaryKey;autoIncrement" json:"id"`
	CatalogID        int64          `gorm:"not null;index" json:"catalog_id"`
	CategoryID       *int64         `gorm:"index" json:"category_id"`
	Name             string         `gorm:"type:varchar(255);not null" json:"name"`
	Slug             string         `gorm:"type:varchar(255);not null;index" json:"slug"`
	Description      string         `gorm:"type:text" json:"description"`
	Price            int64          `gorm:"not null" json:"price"`
	Discount         int64          `gorm:"not null;default:0" json:"discount"` // 0〜100（%）
	Stock            int64          `gorm:"not null" json:"stock"`
	Presentation     string         `gorm:"type:varchar(255)" json:"presentation"`
	FeaturedImageURL string         `gorm:"type:varchar(500)" json:"featured_image_url"`
	IsFeatured       bool           `gorm:"not null;default:false" json:"is_featured"`
	IsActive         bool           `gorm:"not null;default:false" json:"is_active"`
	SortOrder        int64          `gorm:"not null;default:0" json:"sort_order"`
	CreatedAt        time.Time      `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time      `gorm:"not null;autoUpdateTime" json:"updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-"`
}

// 割引適用後の単価
func (p Product) EffectivePrice() int64 {
	if p.Discount > 0 {
		return p.Price - p.Price*p.Discount/100
	}
	return p.Price
}
