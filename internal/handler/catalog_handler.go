package handler

import (
	"net/http"

	"catalogo/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /catalog の公開API（店舗情報＋カテゴリ）
type CatalogHandler struct {
	catalogUC  *usecase.CatalogUsecase
	categoryUC *usecase.CategoryUsecase
}

// DI
func NewCatalogHandler(catalogUC *usecase.CatalogUsecase, categoryUC *usecase.CategoryUsecase) *CatalogHandler {
	return &CatalogHandler{
		catalogUC:  catalogUC,
		categoryUC: categoryUC,
	}
}

func (h *CatalogHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/catalog", h.info)
	g.GET("/categories", h.categories)
}

func (h *CatalogHandler) info(c echo.Context) error {
	out, err := h.catalogUC.GetCatalogInfo(c.Request().Context(), tenantCatalogID(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CatalogHandler) categories(c echo.Context) error {
	items, err := h.categoryUC.ListPublicCategories(c.Request().Context(), tenantCatalogID(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, items)
}
