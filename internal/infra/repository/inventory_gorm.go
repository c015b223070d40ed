package repository

import (
	"context"

	"catalogo/internal/domain/model"
	repo "catalogo/internal/repository"

	"gorm.io/gorm"
)

type InventoryGormRepository struct {
	db *gorm.DB
}

// DI
func NewInventoryGormRepository(db *gorm.DB) *InventoryGormRepository {
	return &InventoryGormRepository{db: db}
}

// 在庫を減算して減算後の値を返す。
// 足りない（マイナスになる）場合は行が更新されず ErrInsufficientStock。
func (r *InventoryGormRepository) DecrementStock(ctx context.Context, productID int64, qty int64) (int64, error) {
	var newStock int64

	res := r.db.WithContext(ctx).Raw(
		`UPDATE products
		 SET stock = stock - ?, updated_at = now()
		 WHERE id = ? AND stock >= ? AND deleted_at IS NULL
		 RETURNING stock`,
		qty, productID, qty,
	).Scan(&newStock)

	if res.Error != nil {
		return 0, res.Error
	}
	if res.RowsAffected == 0 {
		return 0, repo.ErrInsufficientStock
	}
	return newStock, nil
}

// 減算後の値の確定書き込み
func (r *InventoryGormRepository) SetStock(ctx context.Context, productID int64, newStock int64) error {
	res := r.db.WithContext(ctx).
		Model(&model.Product{}).
		Where("id = ?", productID).
		Update("stock", newStock)

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
