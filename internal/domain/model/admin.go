package model

import "time"

// カタログ管理者。パスワード照合はサーバー側（bcrypt）で行う。
type Admin struct {
	ID           int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	CatalogID    int64     `gorm:"not null;index" json:"catalog_id"`
	Email        string    `gorm:"type:varchar(255);not null;uniqueIndex" json:"email"`
	PasswordHash string    `gorm:"type:varchar(255);not null" json:"-"`
	IsActive     bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt    time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
