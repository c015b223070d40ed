package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	CtxCartSessionKey = "cart_session" // string
	CtxVisitorIDKey   = "visitor_id"   // string

	cartSessionCookieName = "cart_session"
	visitorCookieName     = "visitor_id"
)

// EnsureSession はカート用セッションIDと訪問者IDのcookieを発行するミドルウェア。
// 無ければUUIDを振り、あればそのまま使う。どちらもcontextに入れる。
func EnsureSession() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			session := cookieValue(c, cartSessionCookieName)
			if session == "" {
				session = uuid.NewString()
				c.SetCookie(&http.Cookie{
					Name:     cartSessionCookieName,
					Value:    session,
					Path:     "/",
					MaxAge:   int((30 * 24 * time.Hour).Seconds()),
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
			}

			visitor := cookieValue(c, visitorCookieName)
			if visitor == "" {
				visitor = uuid.NewString()
				c.SetCookie(&http.Cookie{
					Name:     visitorCookieName,
					Value:    visitor,
					Path:     "/",
					MaxAge:   int((365 * 24 * time.Hour).Seconds()),
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
			}

			c.Set(CtxCartSessionKey, session)
			c.Set(CtxVisitorIDKey, visitor)

			return next(c)
		}
	}
}

func cookieValue(c echo.Context, name string) string {
	cookie, err := c.Cookie(name)
	if err != nil || cookie.Value == "" {
		return ""
	}
	return cookie.Value
}

func errorJSON(msg string) map[string]string {
	return map[string]string{"error": msg}
}

func formatInt64(v int64) string {
	return fmt.Sprintf("%d", v)
}
