package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"catalogo/internal/infra/token"
	"catalogo/internal/middleware"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func callProtected(t *testing.T, authHeader string, secret string) (*httptest.ResponseRecorder, int64, int64) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/admin/products", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var adminID, catalogID int64
	next := func(c echo.Context) error {
		adminID, _ = c.Get(middleware.CtxAdminIDKey).(int64)
		catalogID, _ = c.Get(middleware.CtxAdminCatalogIDKey).(int64)
		return c.NoContent(http.StatusOK)
	}

	mw := middleware.AuthJWT(secret)
	err := mw(next)(c)
	assert.NoError(t, err)

	return rec, adminID, catalogID
}

func TestAuthJWT_MissingToken(t *testing.T) {
	rec, _, _ := callProtected(t, "", "secret")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthJWT_InvalidToken(t *testing.T) {
	rec, _, _ := callProtected(t, "Bearer not.a.token", "secret")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthJWT_WrongSecret(t *testing.T) {
	issuer := token.NewJWTIssuer("other-secret", time.Hour)
	signed, _, err := issuer.Issue(1, 3, time.Now())
	assert.NoError(t, err)

	rec, _, _ := callProtected(t, "Bearer "+signed, "secret")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthJWT_ValidToken(t *testing.T) {
	issuer := token.NewJWTIssuer("secret", time.Hour)
	signed, _, err := issuer.Issue(1, 3, time.Now())
	assert.NoError(t, err)

	rec, adminID, catalogID := callProtected(t, "Bearer "+signed, "secret")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(1), adminID)
	assert.Equal(t, int64(3), catalogID)
}
