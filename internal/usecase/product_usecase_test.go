package usecase_test

import (
	"context"
	"net/http"
	"testing"

	"catalogo/internal/domain/model"
	repo "catalogo/internal/repository"
	"catalogo/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestProductUsecase_ListPublicProducts_InvalidPage(t *testing.T) {
	uc := usecase.NewProductUsecase(new(ProductRepoMock), new(InventoryRepoMock))

	_, err := uc.ListPublicProducts(context.Background(), 1, usecase.ListProductsInput{Page: 0, Limit: 20})
	assertHTTPError(t, err, http.StatusBadRequest, "invalid page")
}

func TestProductUsecase_ListPublicProducts_InvalidLimit(t *testing.T) {
	uc := usecase.NewProductUsecase(new(ProductRepoMock), new(InventoryRepoMock))

	_, err := uc.ListPublicProducts(context.Background(), 1, usecase.ListProductsInput{Page: 1, Limit: 101})
	assertHTTPError(t, err, http.StatusBadRequest, "invalid limit")
}

func TestProductUsecase_ListPublicProducts_InvalidSort(t *testing.T) {
	uc := usecase.NewProductUsecase(new(ProductRepoMock), new(InventoryRepoMock))

	_, err := uc.ListPublicProducts(context.Background(), 1, usecase.ListProductsInput{Page: 1, Limit: 20, Sort: "rating"})
	assertHTTPError(t, err, http.StatusBadRequest, "invalid sort")
}

func TestProductUsecase_ListPublicProducts_Success(t *testing.T) {
	ctx := context.Background()

	pRepo := new(ProductRepoMock)
	uc := usecase.NewProductUsecase(pRepo, new(InventoryRepoMock))

	q := repo.ProductListQuery{CatalogID: 1, Q: "cafe", Sort: "price_asc", Page: 1, Limit: 20}
	items := []model.Product{
		{ID: 1, Name: "Cafe", IsActive: true},
	}
	pRepo.On("ListPublic", mock.Anything, q).Return(items, int64(1), nil)

	out, err := uc.ListPublicProducts(ctx, 1, usecase.ListProductsInput{Page: 1, Limit: 20, Q: "cafe", Sort: "price_asc"})
	assert.NoError(t, err)
	assert.Equal(t, int64(1), out.Total)
	assert.Equal(t, 1, len(out.Items))

	pRepo.AssertExpectations(t)
}

func TestProductUsecase_GetPublicProduct_NotFound_WhenInactive(t *testing.T) {
	pRepo := new(ProductRepoMock)
	uc := usecase.NewProductUsecase(pRepo, new(InventoryRepoMock))

	pRepo.On("FindByID", mock.Anything, int64(1), int64(5)).
		Return(model.Product{ID: 5, IsActive: false}, nil)

	_, err := uc.GetPublicProduct(context.Background(), 1, 5)
	assertHTTPError(t, err, http.StatusNotFound, "not found")
}

func TestProductUsecase_GetPublicProduct_NotFound_WhenRepoNotFound(t *testing.T) {
	pRepo := new(ProductRepoMock)
	uc := usecase.NewProductUsecase(pRepo, new(InventoryRepoMock))

	pRepo.On("FindByID", mock.Anything, int64(1), int64(5)).
		Return(model.Product{}, repo.ErrNotFound)

	_, err := uc.GetPublicProduct(context.Background(), 1, 5)
	assertHTTPError(t, err, http.StatusNotFound, "not found")
}

func TestProductUsecase_SearchPublicProducts_BlankTermReturnsEmpty(t *testing.T) {
	pRepo := new(ProductRepoMock)
	uc := usecase.NewProductUsecase(pRepo, new(InventoryRepoMock))

	items, err := uc.SearchPublicProducts(context.Background(), 1, "   ")
	assert.NoError(t, err)
	assert.Empty(t, items)

	pRepo.AssertNotCalled(t, "Search", mock.Anything, mock.Anything, mock.Anything)
}

func TestProductUsecase_AdminCreateProduct_InvalidDiscount(t *testing.T) {
	uc := usecase.NewProductUsecase(new(ProductRepoMock), new(InventoryRepoMock))

	_, err := uc.AdminCreateProduct(context.Background(), 1, usecase.AdminSaveProductInput{
		Name:     "Cafe",
		Price:    1000,
		Discount: 150,
	})
	assertHTTPError(t, err, http.StatusBadRequest, "invalid discount")
}

func TestProductUsecase_AdminCreateProduct_GeneratesSlug(t *testing.T) {
	pRepo := new(ProductRepoMock)
	uc := usecase.NewProductUsecase(pRepo, new(InventoryRepoMock))

	pRepo.On("Create", mock.Anything, mock.MatchedBy(func(p model.Product) bool {
		return p.Slug == "cafe-molido" && p.CatalogID == 1
	})).Return(model.Product{ID: 7, Slug: "cafe-molido"}, nil)

	created, err := uc.AdminCreateProduct(context.Background(), 1, usecase.AdminSaveProductInput{
		Name:  "Cafe Molido",
		Price: 1000,
	})
	assert.NoError(t, err)
	assert.Equal(t, int64(7), created.ID)

	pRepo.AssertExpectations(t)
}

func TestProductUsecase_AdminSetStock_ChecksOwnership(t *testing.T) {
	pRepo := new(ProductRepoMock)
	inventory := new(InventoryRepoMock)
	uc := usecase.NewProductUsecase(pRepo, inventory)

	// 他カタログの商品は見えない扱い
	pRepo.On("FindByID", mock.Anything, int64(1), int64(5)).
		Return(model.Product{}, repo.ErrNotFound)

	err := uc.AdminSetStock(context.Background(), 1, 5, 10)
	assertHTTPError(t, err, http.StatusNotFound, "not found")

	inventory.AssertNotCalled(t, "SetStock", mock.Anything, mock.Anything, mock.Anything)
}

func TestProductUsecase_AdminSetStock_Success(t *testing.T) {
	pRepo := new(ProductRepoMock)
	inventory := new(InventoryRepoMock)
	uc := usecase.NewProductUsecase(pRepo, inventory)

	pRepo.On("FindByID", mock.Anything, int64(1), int64(5)).
		Return(model.Product{ID: 5, CatalogID: 1}, nil)
	inventory.On("SetStock", mock.Anything, int64(5), int64(10)).Return(nil)

	err := uc.AdminSetStock(context.Background(), 1, 5, 10)
	assert.NoError(t, err)

	inventory.AssertExpectations(t)
}

func TestProductUsecase_AdminUpdateProduct_NotFound(t *testing.T) {
	pRepo := new(ProductRepoMock)
	uc := usecase.NewProductUsecase(pRepo, new(InventoryRepoMock))

	pRepo.On("Update", mock.Anything, mock.Anything).Return(repo.ErrNotFound)

	err := uc.AdminUpdateProduct(context.Background(), 1, 9, usecase.AdminSaveProductInput{
		Name:  "Cafe",
		Price: 1000,
	})
	assertHTTPError(t, err, http.StatusNotFound, "not found")
}
