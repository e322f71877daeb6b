package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/Anukshashirgave-0808/aathidyam-backend/internal/core/domain"
	"github.com/Anukshashirgave-0808/aathidyam-backend/internal/core/ports"
)

// AccessTokenCookie is the cookie carrying the session token for browser
// clients. Bearer headers and the cookie are interchangeable.
const AccessTokenCookie = "access_token"

// TokenFromRequest extracts the session token from the Authorization header
// or, failing that, from the access_token cookie. Returns "" when neither is
// present.
func TokenFromRequest(c echo.Context) string {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
			return parts[1]
		}
		return ""
	}

	cookie, err := c.Cookie(AccessTokenCookie)
	if err != nil {
		return ""
	}
	return cookie.Value
}

// Auth validates the session token and injects the claims into context.
// The role claim is re-normalized so downstream checks never see a raw
// stored value.
func Auth(tokens ports.TokenManager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			tokenString := TokenFromRequest(c)
			if tokenString == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing credentials")
			}

			claims, err := tokens.Verify(tokenString)
			if err != nil {
				return err
			}

			c.Set("user_id", claims.UserID)
			c.Set("email", claims.Email)
			c.Set("role", domain.NormalizeRole(claims.Role))

			return next(c)
		}
	}
}
