package usecase

import (
	"context"
	"net/http"
	"strings"

	"catalogo/internal/domain/model"
	repo "catalogo/internal/repository"
)

type CategoryUsecase struct {
	categoryRepo repo.CategoryRepository
}

// DI
func NewCategoryUsecase(categoryRepo repo.CategoryRepository) *CategoryUsecase {
	return &CategoryUsecase{categoryRepo: categoryRepo}
}

// 公開カテゴリ一覧
func (u *CategoryUsecase) ListPublicCategories(ctx context.Context, catalogID int64) ([]model.Category, error) {
	categories, err := u.categoryRepo.ListPublic(ctx, catalogID)
	if err != nil {
		return []model.Category{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return categories, nil
}

// 管理画面のカテゴリ一覧（非公開も含む）
func (u *CategoryUsecase) AdminListCategories(ctx context.Context, catalogID int64) ([]model.Category, error) {
	categories, err := u.categoryRepo.ListAll(ctx, catalogID)
	if err != nil {
		return []model.Category{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return categories, nil
}

type AdminSaveCategoryInput struct {
	Name        string
	Description string
	ImageURL    string
	IsActive    bool
	SortOrder   int64
}

// カテゴリ作成（admin）
func (u *CategoryUsecase) AdminCreateCategory(ctx context.Context, catalogID int64, in AdminSaveCategoryInput) (model.Category, error) {
	if strings.TrimSpace(in.Name) == "" {
		return model.Category{}, NewHTTPError(http.StatusBadRequest, "invalid name")
	}

	created, err := u.categoryRepo.Create(ctx, model.Category{
		CatalogID:   catalogID,
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
		ImageURL:    in.ImageURL,
		IsActive:    in.IsActive,
		SortOrder:   in.SortOrder,
	})
	if err != nil {
		return model.Category{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return created, nil
}

// カテゴリ更新（admin）
func (u *CategoryUsecase) AdminUpdateCategory(ctx context.Context, catalogID int64, categoryID int64, in AdminSaveCategoryInput) error {
	if categoryID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if strings.TrimSpace(in.Name) == "" {
		return NewHTTPError(http.StatusBadRequest, "invalid name")
	}

	err := u.categoryRepo.Update(ctx, model.Category{
		ID:          categoryID,
		CatalogID:   catalogID,
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
		ImageURL:    in.ImageURL,
		IsActive:    in.IsActive,
		SortOrder:   in.SortOrder,
	})
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

// カテゴリ削除（admin）
func (u *CategoryUsecase) AdminDeleteCategory(ctx context.Context, catalogID int64, categoryID int64) error {
	if categoryID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	err := u.categoryRepo.DeleteByID(ctx, catalogID, categoryID)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}
