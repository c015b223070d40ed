package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const (
	CtxAdminIDKey        = "admin_id"         // int64
	CtxAdminCatalogIDKey = "admin_catalog_id" // int64
)

// AuthJWT は管理者APIを守るミドルウェア。
// Authorization: Bearer <token> を検証してadmin_idとcatalog_idをcontextに入れる。
func AuthJWT(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				return c.JSON(http.StatusUnauthorized, errorJSON("missing token"))
			}
			tokenString := strings.TrimPrefix(header, "Bearer ")

			token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, jwt.ErrSignatureInvalid
				}
				return []byte(secret), nil
			})
			if err != nil || !token.Valid {
				return c.JSON(http.StatusUnauthorized, errorJSON("invalid token"))
			}

			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				return c.JSON(http.StatusUnauthorized, errorJSON("invalid token"))
			}

			adminID, err := claimInt64(claims, "sub")
			if err != nil {
				return c.JSON(http.StatusUnauthorized, errorJSON("invalid token"))
			}
			catalogID, err := claimInt64(claims, "catalog_id")
			if err != nil {
				return c.JSON(http.StatusUnauthorized, errorJSON("invalid token"))
			}

			c.Set(CtxAdminIDKey, adminID)
			c.Set(CtxAdminCatalogIDKey, catalogID)

			return next(c)
		}
	}
}

// claimは発行時の型によってstringにもfloat64にもなる
func claimInt64(claims jwt.MapClaims, key string) (int64, error) {
	switch v := claims[key].(type) {
	case string:
		return strconv.ParseInt(v, 10, 64)
	case float64:
		return int64(v), nil
	default:
		return 0, jwt.ErrTokenInvalidClaims
	}
}
