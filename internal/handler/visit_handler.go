package handler

import (
	"net/http"

	"catalogo/internal/middleware"
	"catalogo/internal/usecase"

	"github.com/labstack/echo/v4"
)

// 閲覧記録のAPI
type VisitHandler struct {
	uc *usecase.VisitUsecase
}

// DI
func NewVisitHandler(uc *usecase.VisitUsecase) *VisitHandler {
	return &VisitHandler{uc: uc}
}

func (h *VisitHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/visits", h.track)
}

func (h *VisitHandler) RegisterAdminRoutes(g *echo.Group) {
	g.GET("/visits/summary", h.summary)
}

type trackVisitRequest struct {
	Page string `json:"page"`
}

func (h *VisitHandler) track(c echo.Context) error {
	var req trackVisitRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	visitorID, _ := c.Get(middleware.CtxVisitorIDKey).(string)

	err := h.uc.TrackVisit(c.Request().Context(), tenantCatalogID(c), usecase.TrackVisitInput{
		VisitorID: visitorID,
		Page:      req.Page,
		UserAgent: c.Request().UserAgent(),
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *VisitHandler) summary(c echo.Context) error {
	rows, err := h.uc.Summary(c.Request().Context(), adminCatalogID(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, rows)
}
