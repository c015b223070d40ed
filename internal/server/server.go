package server

import (
	"time"

	"catalogo/internal/config"
	"catalogo/internal/handler"
	appmw "catalogo/internal/middleware"
	repo "catalogo/internal/repository"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

// Handlers はルート登録に必要なハンドラ一式
type Handlers struct {
	Catalog       *handler.CatalogHandler
	Product       *handler.ProductHandler
	Cart          *handler.CartHandler
	Visit         *handler.VisitHandler
	AdminAuth     *handler.AdminAuthHandler
	AdminProduct  *handler.AdminProductHandler
	AdminCategory *handler.AdminCategoryHandler
	AdminCatalog  *handler.AdminCatalogHandler
	Upload        *handler.UploadHandler
}

// New はechoを組み立ててルートを登録する。
// 公開APIはテナント解決＋セッション付き、管理APIはJWT必須。
func New(cfg config.Config, catalogs repo.CatalogRepository, h Handlers, logger *zap.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(echomw.Recover())
	e.Use(requestLogger(logger))

	// アップロード画像の配信
	e.Static("/uploads", cfg.UploadDir)

	// 管理者ログインだけはテナント解決の外
	h.AdminAuth.RegisterRoutes(e)

	// 公開API（ホスト名からカタログを解決）
	public := e.Group("", appmw.ResolveCatalog(catalogs, cfg.AppDomain), appmw.EnsureSession())
	h.Catalog.RegisterRoutes(public)
	h.Product.RegisterRoutes(public)
	h.Cart.RegisterRoutes(public)
	h.Visit.RegisterRoutes(public)

	// 管理API
	admin := e.Group("/admin", appmw.AuthJWT(cfg.JWTSecret))
	h.AdminProduct.RegisterRoutes(admin)
	h.AdminCategory.RegisterRoutes(admin)
	h.AdminCatalog.RegisterRoutes(admin)
	h.Upload.RegisterRoutes(admin)
	h.Visit.RegisterAdminRoutes(admin)

	return e
}

// アクセスログ（zap）
func requestLogger(logger *zap.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			logger.Info("request",
				zap.String("method", c.Request().Method),
				zap.String("path", c.Request().URL.Path),
				zap.String("host", c.Request().Host),
				zap.Int("status", c.Response().Status),
				zap.Duration("latency", time.Since(start)),
			)
			return err
		}
	}
}
