package model

import "time"

// 1カタログ＝1店舗。ホスト名（独自ドメインまたはサブドメインslug）で解決する。
type Catalog struct {
	ID             int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name           string    `gorm:"type:varchar(255);not null" json:"name"`
	Slug           string    `gorm:"type:varchar(100);not null;uniqueIndex" json:"slug"`
	CustomDomain   string    `gorm:"type:varchar(255);index" json:"custom_domain"`
	Description    string    `gorm:"type:text" json:"description"`
	LogoURL        string    `gorm:"type:varchar(500)" json:"logo_url"`
	BannerURL      string    `gorm:"type:varchar(500)" json:"banner_url"`
	PrimaryColor   string    `gorm:"type:varchar(20)" json:"primary_color"`
	SecondaryColor string    `gorm:"type:varchar(20)" json:"secondary_color"`
	WhatsappNumber string    `gorm:"type:varchar(32)" json:"whatsapp_number"`
	InstagramUser  string    `gorm:"type:varchar(100)" json:"instagram_username"`
	FacebookUser   string    `gorm:"type:varchar(100)" json:"facebook_username"`
	IsActive       bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt      time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
