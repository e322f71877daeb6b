package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Anukshashirgave-0808/aathidyam-backend/internal/api/middleware"
	"github.com/Anukshashirgave-0808/aathidyam-backend/internal/core/domain"
	"github.com/Anukshashirgave-0808/aathidyam-backend/internal/core/ports"
)

// OrderHandler handles order placement and the admin listing.
type OrderHandler struct {
	service ports.OrderService
}

func NewOrderHandler(service ports.OrderService) *OrderHandler {
	return &OrderHandler{service: service}
}

// Create places an order. Authentication is optional: a resolvable token
// stamps the order with the caller's identity, otherwise the submitted email
// owns it as a guest order.
//
// @Summary      Place an order
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        body  body      createOrderRequest  true  "Order details"
// @Success      200   {object}  createOrderResponse
// @Failure      400   {object}  errorResponse
// @Router       /orders [post]
func (h *OrderHandler) Create(c echo.Context) error {
	var req createOrderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	items := make([]ports.OrderItemInput, len(req.Items))
	for i, item := range req.Items {
		items[i] = ports.OrderItemInput{
			Name:     item.Name,
			Quantity: item.Quantity,
			Price:    item.Price,
		}
	}

	result, err := h.service.CreateOrder(c.Request().Context(), ports.CreateOrderInput{
		TokenString: middleware.TokenFromRequest(c),
		Email:       req.Email,
		Name:        req.Name,
		Phone:       req.Phone,
		Address: ports.AddressInput{
			Country: req.Address.Country,
			State:   req.Address.State,
			City:    req.Address.City,
			Street:  req.Address.Street,
			Pincode: req.Address.Pincode,
		},
		PaymentMethod: req.PaymentMethod,
		Items:         items,
		Total:         req.Total,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, createOrderResponse{
		Success: true,
		OrderID: result.OrderID,
		IsGuest: result.IsGuest,
	})
}

// AdminList returns every order, newest first. The route is guarded by the
// Auth and RBAC(admin) middleware.
//
// @Summary      List all orders
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  adminOrdersResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /admin/orders [get]
func (h *OrderHandler) AdminList(c echo.Context) error {
	orders, err := h.service.ListAllOrders(c.Request().Context())
	if err != nil {
		return err
	}

	views := make([]adminOrderView, len(orders))
	for i, o := range orders {
		items := o.Items
		if items == nil {
			items = []domain.OrderItem{}
		}
		views[i] = adminOrderView{
			ID:      o.ID,
			UserID:  o.UserID,
			Email:   o.Email,
			IsGuest: o.IsGuest,
			Items:   items,
			Total:   o.Total,
			Status:  string(o.Status),
		}
	}

	return c.JSON(http.StatusOK, adminOrdersResponse{Success: true, Orders: views})
}
