package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"catalogo/internal/domain/model"
	"catalogo/internal/middleware"
	repo "catalogo/internal/repository"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

// slug/独自ドメインのどちらでも引けるfake
type fakeCatalogRepo struct {
	bySlug   map[string]model.Catalog
	byDomain map[string]model.Catalog
}

func (f *fakeCatalogRepo) FindByID(ctx context.Context, id int64) (model.Catalog, error) {
	return model.Catalog{}, repo.ErrNotFound
}

func (f *fakeCatalogRepo) FindByCustomDomain(ctx context.Context, domain string) (model.Catalog, error) {
	c, ok := f.byDomain[domain]
	if !ok {
		return model.Catalog{}, repo.ErrNotFound
	}
	return c, nil
}

func (f *fakeCatalogRepo) FindBySlug(ctx context.Context, slug string) (model.Catalog, error) {
	c, ok := f.bySlug[slug]
	if !ok {
		return model.Catalog{}, repo.ErrNotFound
	}
	return c, nil
}

func (f *fakeCatalogRepo) Update(ctx context.Context, c model.Catalog) error {
	return nil
}

func resolveWith(t *testing.T, host string, catalogs repo.CatalogRepository) (*httptest.ResponseRecorder, int64) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Host = host
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var gotID int64
	next := func(c echo.Context) error {
		gotID, _ = c.Get(middleware.CtxCatalogIDKey).(int64)
		return c.NoContent(http.StatusOK)
	}

	mw := middleware.ResolveCatalog(catalogs, "catalogo.app")
	err := mw(next)(c)
	assert.NoError(t, err)

	return rec, gotID
}

func TestResolveCatalog_BySubdomainSlug(t *testing.T) {
	catalogs := &fakeCatalogRepo{
		bySlug: map[string]model.Catalog{
			"tienda": {ID: 7, Slug: "tienda"},
		},
	}

	rec, gotID := resolveWith(t, "tienda.catalogo.app", catalogs)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(7), gotID)
}

func TestResolveCatalog_ByCustomDomain(t *testing.T) {
	catalogs := &fakeCatalogRepo{
		byDomain: map[string]model.Catalog{
			"www.mitienda.com": {ID: 9, CustomDomain: "www.mitienda.com"},
		},
	}

	rec, gotID := resolveWith(t, "www.mitienda.com:8080", catalogs)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(9), gotID)
}

func TestResolveCatalog_UnknownHost(t *testing.T) {
	rec, _ := resolveWith(t, "nadie.catalogo.app", &fakeCatalogRepo{})

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
