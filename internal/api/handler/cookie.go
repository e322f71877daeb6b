package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Anukshashirgave-0808/aathidyam-backend/internal/api/middleware"
)

// setAuthCookie delivers the session token as an HTTP-only cookie so the
// storefront can authenticate cross-site without storing the token in JS.
func setAuthCookie(c echo.Context, tokenString string, maxAge time.Duration) {
	c.SetCookie(&http.Cookie{
		Name:     middleware.AccessTokenCookie,
		Value:    tokenString,
		Path:     "/",
		MaxAge:   int(maxAge.Seconds()),
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	})
}

// clearAuthCookie expires the session cookie immediately.
func clearAuthCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     middleware.AccessTokenCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	})
}
