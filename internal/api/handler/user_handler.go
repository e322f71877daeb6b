package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Anukshashirgave-0808/aathidyam-backend/internal/api/middleware"
	"github.com/Anukshashirgave-0808/aathidyam-backend/internal/core/domain"
	"github.com/Anukshashirgave-0808/aathidyam-backend/internal/core/ports"
)

// UserHandler serves the cookie-based current-user probe used by the
// storefront on page load.
type UserHandler struct {
	identity     ports.IdentityService
	orderService ports.OrderService
}

func NewUserHandler(identity ports.IdentityService, orderService ports.OrderService) *UserHandler {
	return &UserHandler{identity: identity, orderService: orderService}
}

type guestResponse struct {
	Status string `json:"status"`
}

type currentUserResponse struct {
	Status string               `json:"status"`
	User   ports.UserProjection `json:"user"`
	Orders []orderView          `json:"orders"`
}

// Current resolves the caller from the session cookie (or bearer header).
// Any failure to resolve, including an expired or malformed token, lands on
// the guest branch rather than an error: this endpoint answers "who is
// browsing", not "prove who you are".
//
// @Summary      Current user (guest fallback)
// @Tags         user
// @Produce      json
// @Success      200  {object}  currentUserResponse
// @Router       /user/current [get]
func (h *UserHandler) Current(c echo.Context) error {
	tokenString := middleware.TokenFromRequest(c)
	if tokenString == "" {
		return c.JSON(http.StatusOK, guestResponse{Status: "guest"})
	}

	user, err := h.identity.ResolveByToken(c.Request().Context(), tokenString)
	if err != nil {
		return c.JSON(http.StatusOK, guestResponse{Status: "guest"})
	}

	// A listing fault should not turn a known user into a guest.
	orders, err := h.orderService.ListUserOrders(c.Request().Context(), user.ID)
	if err != nil {
		orders = nil
	}

	return c.JSON(http.StatusOK, currentUserResponse{
		Status: "user",
		User:   projectUser(user),
		Orders: toOrderViews(orders),
	})
}

func projectUser(u *domain.User) ports.UserProjection {
	return ports.UserProjection{
		ID:     u.ID,
		Name:   u.Name,
		Email:  u.Email,
		Mobile: u.Mobile,
		Role:   domain.NormalizeRole(u.Role),
	}
}
