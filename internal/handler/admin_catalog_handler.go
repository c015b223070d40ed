package handler

import (
	"net/http"

	"catalogo/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /admin/catalog のカタログ設定API
type AdminCatalogHandler struct {
	uc *usecase.CatalogUsecase
}

// DI
func NewAdminCatalogHandler(uc *usecase.CatalogUsecase) *AdminCatalogHandler {
	return &AdminCatalogHandler{uc: uc}
}

func (h *AdminCatalogHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/catalog", h.get)
	g.PUT("/catalog", h.update)
}

func (h *AdminCatalogHandler) get(c echo.Context) error {
	out, err := h.uc.GetCatalogInfo(c.Request().Context(), adminCatalogID(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

type updateCatalogRequest struct {
	Name           string `json:"name"`
	Description    string `json:"description"`
	LogoURL        string `json:"logo_url"`
	BannerURL      string `json:"banner_url"`
	PrimaryColor   string `json:"primary_color"`
	SecondaryColor string `json:"secondary_color"`
	WhatsappNumber string `json:"whatsapp_number"`
	InstagramUser  string `json:"instagram_user"`
	FacebookUser   string `json:"facebook_user"`
}

func (h *AdminCatalogHandler) update(c echo.Context) error {
	var req updateCatalogRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	err := h.uc.AdminUpdateCatalog(c.Request().Context(), adminCatalogID(c), usecase.AdminUpdateCatalogInput{
		Name:           req.Name,
		Description:    req.Description,
		LogoURL:        req.LogoURL,
		BannerURL:      req.BannerURL,
		PrimaryColor:   req.PrimaryColor,
		SecondaryColor: req.SecondaryColor,
		WhatsappNumber: req.WhatsappNumber,
		InstagramUser:  req.InstagramUser,
		FacebookUser:   req.FacebookUser,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
