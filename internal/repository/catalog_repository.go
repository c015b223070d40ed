package repository

import (
	"catalogo/internal/domain/model"
	"context"
)

type CatalogRepository interface {
	FindByID(ctx context.Context, id int64) (model.Catalog, error)
	// 独自ドメイン→カタログ
	FindByCustomDomain(ctx context.Context, domain string) (model.Catalog, error)
	// サブドメインslug→カタログ
	FindBySlug(ctx context.Context, slug string) (model.Catalog, error)
	Update(ctx context.Context, c model.Catalog) error
}
