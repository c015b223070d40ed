package handler

import (
	"net/http"

	"catalogo/internal/infra/upload"

	"github.com/labstack/echo/v4"
)

// /admin/uploads の画像アップロードAPI
type UploadHandler struct {
	storage *upload.DiskStorage
}

// DI
func NewUploadHandler(storage *upload.DiskStorage) *UploadHandler {
	return &UploadHandler{storage: storage}
}

func (h *UploadHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/uploads", h.create)
	g.DELETE("/uploads/:name", h.remove)
}

type uploadResponse struct {
	FileName string `json:"file_name"`
	URL      string `json:"url"`
}

func (h *UploadHandler) create(c echo.Context) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "file is required"})
	}

	name, err := h.storage.Save(fh)
	if err == upload.ErrUnsupportedType {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "unsupported file type"})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "upload failed"})
	}

	return c.JSON(http.StatusCreated, uploadResponse{
		FileName: name,
		URL:      "/uploads/" + name,
	})
}

func (h *UploadHandler) remove(c echo.Context) error {
	err := h.storage.Delete(c.Param("name"))
	if err == upload.ErrInvalidName {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid file name"})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "delete failed"})
	}
	return c.NoContent(http.StatusNoContent)
}
