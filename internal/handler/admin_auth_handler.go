package handler

import (
	"net/http"

	auth "catalogo/internal/usecase/auth_usecase"

	"github.com/labstack/echo/v4"
)

// /admin/login の認証API
type AdminAuthHandler struct {
	uc *auth.LoginUsecase
}

// DI
func NewAdminAuthHandler(uc *auth.LoginUsecase) *AdminAuthHandler {
	return &AdminAuthHandler{uc: uc}
}

func (h *AdminAuthHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/admin/login", h.login)
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AdminAuthHandler) login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.Execute(c.Request().Context(), auth.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err == auth.ErrInvalidCredentials {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "invalid credentials"})
	}
	if err == auth.ErrAdminInactive {
		return c.JSON(http.StatusForbidden, ErrorResponse{Error: "admin is inactive"})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}

	return c.JSON(http.StatusOK, out)
}
