package repository

import (
	"catalogo/internal/domain/model"
	"context"
	"errors"
)

var ErrNotFound = errors.New("not found")

// 一覧検索
type ProductListQuery struct {
	CatalogID  int64
	CategoryID *int64
	Q          string
	MinPrice   *int64
	MaxPrice   *int64
	IsFeatured *bool
	InStock    bool
	Sort       string
	Page       int
	Limit      int
}

// 商品の永続化（保存・取得）だけを約束。
type ProductRepository interface {
	ListPublic(ctx context.Context, q ProductListQuery) ([]model.Product, int64, error)
	// 非公開も含む管理画面用の一覧
	ListAdmin(ctx context.Context, q ProductListQuery) ([]model.Product, int64, error)
	// 名前のILIKE部分一致、名前昇順
	Search(ctx context.Context, catalogID int64, term string) ([]model.Product, error)
	FindByID(ctx context.Context, catalogID int64, id int64) (model.Product, error)
	FindBySlug(ctx context.Context, catalogID int64, slug string) (model.Product, error)

	Create(ctx context.Context, p model.Product) (model.Product, error)
	Update(ctx context.Context, p model.Product) error
	SetActive(ctx context.Context, catalogID int64, id int64, isActive bool) error
	SoftDelete(ctx context.Context, catalogID int64, id int64) error
}
