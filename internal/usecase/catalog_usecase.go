package usecase

import (
	"context"
	"net/http"
	"strings"

	"catalogo/internal/domain/model"
	repo "catalogo/internal/repository"
)

type CatalogUsecase struct {
	catalogRepo  repo.CatalogRepository
	categoryRepo repo.CategoryRepository
}

// DI
func NewCatalogUsecase(catalogRepo repo.CatalogRepository, categoryRepo repo.CategoryRepository) *CatalogUsecase {
	return &CatalogUsecase{
		catalogRepo:  catalogRepo,
		categoryRepo: categoryRepo,
	}
}

// カタログ情報＋カテゴリ一覧（店舗レイアウト用）
type CatalogInfoOutput struct {
	Catalog    model.Catalog    `json:"catalog"`
	Categories []model.Category `json:"categories"`
}

func (u *CatalogUsecase) GetCatalogInfo(ctx context.Context, catalogID int64) (CatalogInfoOutput, error) {
	c, err := u.catalogRepo.FindByID(ctx, catalogID)
	if err == repo.ErrNotFound {
		return CatalogInfoOutput{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return CatalogInfoOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	categories, err := u.categoryRepo.ListPublic(ctx, catalogID)
	if err != nil {
		return CatalogInfoOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return CatalogInfoOutput{
		Catalog:    c,
		Categories: categories,
	}, nil
}

type AdminUpdateCatalogInput struct {
	Name           string
	Description    string
	LogoURL        string
	BannerURL      string
	PrimaryColor   string
	SecondaryColor string
	WhatsappNumber string
	InstagramUser  string
	FacebookUser   string
}

// カタログ設定の更新（admin）。WhatsApp番号は数字のみ許可。
func (u *CatalogUsecase) AdminUpdateCatalog(ctx context.Context, catalogID int64, in AdminUpdateCatalogInput) error {
	if strings.TrimSpace(in.Name) == "" {
		return NewHTTPError(http.StatusBadRequest, "invalid name")
	}

	phone := strings.TrimSpace(in.WhatsappNumber)
	if phone != "" && !isDigits(phone) {
		return NewHTTPError(http.StatusBadRequest, "invalid whatsapp_number")
	}

	err := u.catalogRepo.Update(ctx, model.Catalog{
		ID:             catalogID,
		Name:           strings.TrimSpace(in.Name),
		Description:    in.Description,
		LogoURL:        in.LogoURL,
		BannerURL:      in.BannerURL,
		PrimaryColor:   in.PrimaryColor,
		SecondaryColor: in.SecondaryColor,
		WhatsappNumber: phone,
		InstagramUser:  in.InstagramUser,
		FacebookUser:   in.FacebookUser,
	})
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
