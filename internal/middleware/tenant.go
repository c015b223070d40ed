package middleware

import (
	"net"
	"net/http"
	"strings"

	repo "catalogo/internal/repository"

	"github.com/labstack/echo/v4"
)

const (
	CtxCatalogIDKey = "catalog_id" // int64

	catalogCookieName = "catalog_id"
)

// ResolveCatalog はホスト名からカタログを解決するミドルウェア。
// ベースドメイン配下ならサブドメインをslugとして、それ以外は独自ドメインとして探す。
// 見つからなければ404。見つかったらcontextとcookieにカタログIDを入れる。
func ResolveCatalog(catalogs repo.CatalogRepository, appDomain string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			host := requestHost(c.Request())
			if host == "" {
				return c.JSON(http.StatusNotFound, errorJSON("catalog not found"))
			}

			ctx := c.Request().Context()

			var catalogID int64
			if strings.HasSuffix(host, "."+appDomain) {
				//サブドメインの最初のラベルがslug
				slug := strings.Split(host, ".")[0]
				catalog, err := catalogs.FindBySlug(ctx, slug)
				if err == repo.ErrNotFound {
					return c.JSON(http.StatusNotFound, errorJSON("catalog not found"))
				}
				if err != nil {
					return c.JSON(http.StatusInternalServerError, errorJSON("db error"))
				}
				catalogID = catalog.ID
			} else {
				//独自ドメイン
				catalog, err := catalogs.FindByCustomDomain(ctx, host)
				if err == repo.ErrNotFound {
					return c.JSON(http.StatusNotFound, errorJSON("catalog not found"))
				}
				if err != nil {
					return c.JSON(http.StatusInternalServerError, errorJSON("db error"))
				}
				catalogID = catalog.ID
			}

			c.Set(CtxCatalogIDKey, catalogID)
			c.SetCookie(&http.Cookie{
				Name:     catalogCookieName,
				Value:    formatInt64(catalogID),
				Path:     "/",
				HttpOnly: true,
			})

			return next(c)
		}
	}
}

// ポート付きのHostからホスト名だけを取り出す
func requestHost(r *http.Request) string {
	host := r.Host
	if host == "" {
		return ""
	}
	if h, _, err := net.SplitHostPort(host); err == nil {
		return h
	}
	return host
}
