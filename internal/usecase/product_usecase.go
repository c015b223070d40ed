package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"catalogo/internal/domain/model"
	repo "catalogo/internal/repository"
)

type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

func NewHTTPError(status int, message string) error {
	return &HTTPError{
		Status:  status,
		Message: message,
	}
}

func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	ok := errors.As(err, &he)
	return he, ok
}

type ProductUsecase struct {
	productRepo   repo.ProductRepository
	inventoryRepo repo.InventoryRepository
}

// DI
func NewProductUsecase(productRepo repo.ProductRepository, inventoryRepo repo.InventoryRepository) *ProductUsecase {
	return &ProductUsecase{
		productRepo:   productRepo,
		inventoryRepo: inventoryRepo,
	}
}

// GET /productsの入力DTO
type ListProductsInput struct {
	Page       int
	Limit      int
	Q          string
	CategoryID *int64
	MinPrice   *int64
	MaxPrice   *int64
	IsFeatured *bool
	InStock    bool
	Sort       string
}

type ProductListOutput struct {
	Items []model.Product `json:"items"`
	Total int64           `json:"total"`
	Page  int             `json:"page"`
	Limit int             `json:"limit"`
}

// 公開商品一覧
func (u *ProductUsecase) ListPublicProducts(ctx context.Context, catalogID int64, in ListProductsInput) (ProductListOutput, error) {
	if in.Page < 1 {
		return ProductListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid page")
	}
	if in.Limit < 1 || in.Limit > 100 {
		return ProductListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid limit")
	}

	switch in.Sort {
	case "", "price_asc", "price_desc", "name":
	default:
		return ProductListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid sort")
	}

	items, total, err := u.productRepo.ListPublic(ctx, repo.ProductListQuery{
		CatalogID:  catalogID,
		CategoryID: in.CategoryID,
		Q:          in.Q,
		MinPrice:   in.MinPrice,
		MaxPrice:   in.MaxPrice,
		IsFeatured: in.IsFeatured,
		InStock:    in.InStock,
		Sort:       in.Sort,
		Page:       in.Page,
		Limit:      in.Limit,
	})
	if err != nil {
		return ProductListOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return ProductListOutput{
		Items: items,
		Total: total,
		Page:  in.Page,
		Limit: in.Limit,
	}, nil
}

// 公開商品の詳細（非公開は404扱い）
func (u *ProductUsecase) GetPublicProduct(ctx context.Context, catalogID int64, id int64) (model.Product, error) {
	if id <= 0 {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	p, err := u.productRepo.FindByID(ctx, catalogID, id)
	if err == repo.ErrNotFound {
		return model.Product{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if !p.IsActive {
		return model.Product{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	return p, nil
}

// slugで公開商品の詳細
func (u *ProductUsecase) GetPublicProductBySlug(ctx context.Context, catalogID int64, slug string) (model.Product, error) {
	if strings.TrimSpace(slug) == "" {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "invalid slug")
	}

	p, err := u.productRepo.FindBySlug(ctx, catalogID, slug)
	if err == repo.ErrNotFound {
		return model.Product{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if !p.IsActive {
		return model.Product{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	return p, nil
}

// 名前の部分一致検索
func (u *ProductUsecase) SearchPublicProducts(ctx context.Context, catalogID int64, term string) ([]model.Product, error) {
	if strings.TrimSpace(term) == "" {
		return []model.Product{}, nil
	}

	items, err := u.productRepo.Search(ctx, catalogID, term)
	if err != nil {
		return []model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return items, nil
}

// 管理画面の商品一覧（非公開も含む）
func (u *ProductUsecase) AdminListProducts(ctx context.Context, catalogID int64, in ListProductsInput) (ProductListOutput, error) {
	if in.Page < 1 {
		return ProductListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid page")
	}
	if in.Limit < 1 || in.Limit > 100 {
		return ProductListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid limit")
	}

	switch in.Sort {
	case "", "name":
	default:
		return ProductListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid sort")
	}

	items, total, err := u.productRepo.ListAdmin(ctx, repo.ProductListQuery{
		CatalogID: catalogID,
		Q:         in.Q,
		Sort:      in.Sort,
		Page:      in.Page,
		Limit:     in.Limit,
	})
	if err != nil {
		return ProductListOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return ProductListOutput{
		Items: items,
		Total: total,
		Page:  in.Page,
		Limit: in.Limit,
	}, nil
}

type AdminSaveProductInput struct {
	Name             string
	Slug             string
	Description      string
	Price            int64
	Discount         int64
	Stock            int64
	Presentation     string
	FeaturedImageURL string
	CategoryID       *int64
	IsFeatured       bool
	IsActive         bool
	SortOrder        int64
}

func validateSaveProduct(in AdminSaveProductInput) error {
	if strings.TrimSpace(in.Name) == "" {
		return NewHTTPError(http.StatusBadRequest, "invalid name")
	}
	if in.Price < 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid price")
	}
	if in.Discount < 0 || in.Discount > 100 {
		return NewHTTPError(http.StatusBadRequest, "invalid discount")
	}
	if in.Stock < 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid stock")
	}
	return nil
}

// 商品作成（admin）
func (u *ProductUsecase) AdminCreateProduct(ctx context.Context, catalogID int64, in AdminSaveProductInput) (model.Product, error) {
	if err := validateSaveProduct(in); err != nil {
		return model.Product{}, err
	}

	slug := strings.TrimSpace(in.Slug)
	if slug == "" {
		slug = slugify(in.Name)
	}

	created, err := u.productRepo.Create(ctx, model.Product{
		CatalogID:        catalogID,
		CategoryID:       in.CategoryID,
		Name:             strings.TrimSpace(in.Name),
		Slug:             slug,
		Description:      in.Description,
		Price:            in.Price,
		Discount:         in.Discount,
		Stock:            in.Stock,
		Presentation:     in.Presentation,
		FeaturedImageURL: in.FeaturedImageURL,
		IsFeatured:       in.IsFeatured,
		IsActive:         in.IsActive,
		SortOrder:        in.SortOrder,
	})
	if err != nil {
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return created, nil
}

// 商品更新（admin）
func (u *ProductUsecase) AdminUpdateProduct(ctx context.Context, catalogID int64, productID int64, in AdminSaveProductInput) error {
	if productID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if err := validateSaveProduct(in); err != nil {
		return err
	}

	slug := strings.TrimSpace(in.Slug)
	if slug == "" {
		slug = slugify(in.Name)
	}

	err := u.productRepo.Update(ctx, model.Product{
		ID:               productID,
		CatalogID:        catalogID,
		CategoryID:       in.CategoryID,
		Name:             strings.TrimSpace(in.Name),
		Slug:             slug,
		Description:      in.Description,
		Price:            in.Price,
		Discount:         in.Discount,
		Stock:            in.Stock,
		Presentation:     in.Presentation,
		FeaturedImageURL: in.FeaturedImageURL,
		IsFeatured:       in.IsFeatured,
		IsActive:         in.IsActive,
		SortOrder:        in.SortOrder,
	})
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

// 商品削除（論理削除）
func (u *ProductUsecase) AdminDeleteProduct(ctx context.Context, catalogID int64, productID int64) error {
	if productID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	err := u.productRepo.SoftDelete(ctx, catalogID, productID)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

// 公開/非公開の切り替え
func (u *ProductUsecase) AdminSetActive(ctx context.Context, catalogID int64, productID int64, isActive bool) error {
	if productID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	err := u.productRepo.SetActive(ctx, catalogID, productID, isActive)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

// 在庫を指定値に設定（admin）。カタログ所属を確認してから書く。
func (u *ProductUsecase) AdminSetStock(ctx context.Context, catalogID int64, productID int64, stock int64) error {
	if productID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if stock < 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid stock")
	}

	_, err := u.productRepo.FindByID(ctx, catalogID, productID)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	err = u.inventoryRepo.SetStock(ctx, productID, stock)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

// 名前からslugを作る（小文字化して空白をハイフンに）
func slugify(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = strings.Join(strings.Fields(s), "-")
	return s
}
