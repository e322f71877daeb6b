package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Anukshashirgave-0808/aathidyam-backend/internal/core/ports"
)

// AuthHandler handles registration, login, logout, and the caller's own
// order listing.
type AuthHandler struct {
	authService  ports.AuthService
	orderService ports.OrderService
	tokenTTL     time.Duration
}

func NewAuthHandler(authService ports.AuthService, orderService ports.OrderService, tokenTTL time.Duration) *AuthHandler {
	return &AuthHandler{
		authService:  authService,
		orderService: orderService,
		tokenTTL:     tokenTTL,
	}
}

// Register creates a new account.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Registration details"
// @Success      200   {object}  successResponse
// @Failure      400   {object}  errorResponse
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	err := h.authService.Register(c.Request().Context(), ports.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Mobile:   req.Mobile,
		Password: req.Password,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, successResponse{Success: true})
}

// Login authenticates a user and issues a session token, returned both in
// the body and as the access_token cookie.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      429   {object}  errorResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.authService.Login(c.Request().Context(), ports.LoginInput{
		Email:     req.Email,
		Password:  req.Password,
		LoginType: req.LoginType,
	})
	if err != nil {
		return err
	}

	setAuthCookie(c, result.Token, h.tokenTTL)

	return c.JSON(http.StatusOK, loginResponse{
		Success: true,
		Token:   result.Token,
		User:    result.User,
	})
}

// Logout clears the session cookie. The token itself stays valid until
// expiry; there is no server-side revocation.
//
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Success      200  {object}  successResponse
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	clearAuthCookie(c)
	return c.JSON(http.StatusOK, successResponse{Success: true})
}

// MyOrders returns the authenticated caller's orders, newest first.
//
// @Summary      List own orders
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ordersResponse
// @Failure      401  {object}  errorResponse
// @Router       /auth/my-orders [get]
func (h *AuthHandler) MyOrders(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	orders, err := h.orderService.ListUserOrders(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, ordersResponse{Success: true, Orders: toOrderViews(orders)})
}
