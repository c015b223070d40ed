package repository

import (
	"catalogo/internal/domain/model"
	"context"
)

type CategoryRepository interface {
	// 公開中のみ、sort_order昇順
	ListPublic(ctx context.Context, catalogID int64) ([]model.Category, error)
	// 非公開も含む管理画面用の一覧
	ListAll(ctx context.Context, catalogID int64) ([]model.Category, error)
	FindByID(ctx context.Context, catalogID int64, id int64) (model.Category, error)

	Create(ctx context.Context, c model.Category) (model.Category, error)
	Update(ctx context.Context, c model.Category) error
	DeleteByID(ctx context.Context, catalogID int64, id int64) error
}
