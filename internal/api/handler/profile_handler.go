package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Anukshashirgave-0808/aathidyam-backend/internal/api/middleware"
	"github.com/Anukshashirgave-0808/aathidyam-backend/internal/core/domain"
	"github.com/Anukshashirgave-0808/aathidyam-backend/internal/core/ports"
)

// ProfileHandler serves the legacy profile lookup: bearer token when
// available, email/mobile query parameters as a fallback.
type ProfileHandler struct {
	identity     ports.IdentityService
	orderService ports.OrderService
}

func NewProfileHandler(identity ports.IdentityService, orderService ports.OrderService) *ProfileHandler {
	return &ProfileHandler{identity: identity, orderService: orderService}
}

type profileResponse struct {
	Success bool                 `json:"success"`
	User    ports.UserProjection `json:"user"`
	Orders  []orderView          `json:"orders"`
}

// Get resolves the caller by token first, then by email/mobile query
// parameters. The fallback is a convenience lookup, not an authentication.
// A token that was presented but failed to decode yields 401 when no
// fallback identifier matched; no identity at all yields 404.
//
// @Summary      Profile lookup
// @Tags         profile
// @Produce      json
// @Param        email   query  string  false  "Fallback email"
// @Param        mobile  query  string  false  "Fallback mobile"
// @Success      200  {object}  profileResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /profile [get]
func (h *ProfileHandler) Get(c echo.Context) error {
	ctx := c.Request().Context()

	var user *domain.User
	var tokenErr error

	if tokenString := middleware.TokenFromRequest(c); tokenString != "" {
		user, tokenErr = h.identity.ResolveByToken(ctx, tokenString)
	}

	if user == nil {
		fallback, err := h.identity.ResolveByFallback(ctx, c.QueryParam("email"), c.QueryParam("mobile"))
		if err != nil {
			return err
		}
		user = fallback
	}

	if user == nil {
		if tokenErr != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
		}
		return domain.ErrUserNotFound
	}

	orders, err := h.orderService.ListUserOrders(ctx, user.ID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, profileResponse{
		Success: true,
		User:    projectUser(user),
		Orders:  toOrderViews(orders),
	})
}
