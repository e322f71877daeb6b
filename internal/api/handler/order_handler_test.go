package handler

import (
	"net/http"
	"testing"

	"github.com/Anukshashirgave-0808/aathidyam-backend/internal/core/domain"
	"github.com/Anukshashirgave-0808/aathidyam-backend/internal/core/ports"
)

const validOrderBody = `{
	"email": "buyer@x.com",
	"name": "Buyer",
	"phone": "555-0102",
	"address": {"country":"IN","state":"KA","city":"Bengaluru","street":"1 MG Road","pincode":"560001"},
	"items": [{"name":"Masala Dosa Kit","quantity":2,"price":450}],
	"total": 900
}`

func TestOrderHandler_Create(t *testing.T) {
	orders := &stubOrderService{createResult: &ports.CreateOrderResult{OrderID: "o1", IsGuest: true}}
	h := NewOrderHandler(orders)

	c, rec := newRequestContext(http.MethodPost, "/orders", validOrderBody)

	if err := h.Create(c); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp createOrderResponse
	decodeBody(t, rec, &resp)
	if !resp.Success || resp.OrderID != "o1" || !resp.IsGuest {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
	if orders.lastCreate.Email != "buyer@x.com" || len(orders.lastCreate.Items) != 1 {
		t.Fatalf("input not forwarded: %+v", orders.lastCreate)
	}
}

func TestOrderHandler_Create_ForwardsToken(t *testing.T) {
	orders := &stubOrderService{createResult: &ports.CreateOrderResult{OrderID: "o1"}}
	h := NewOrderHandler(orders)

	c, _ := newRequestContext(http.MethodPost, "/orders", validOrderBody)
	c.Request().Header.Set("Authorization", "Bearer session-token")

	if err := h.Create(c); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if orders.lastCreate.TokenString != "session-token" {
		t.Fatalf("token not forwarded: %+v", orders.lastCreate)
	}
}

func TestOrderHandler_Create_NoItems(t *testing.T) {
	h := NewOrderHandler(&stubOrderService{})

	c, _ := newRequestContext(http.MethodPost, "/orders", `{
		"email": "buyer@x.com", "name": "Buyer", "phone": "555-0102",
		"address": {"country":"IN","state":"KA","city":"Bengaluru","street":"1 MG Road","pincode":"560001"},
		"items": [], "total": 0
	}`)

	err := h.Create(c)
	if code := httpErrCode(t, err); code != http.StatusBadRequest {
		t.Fatalf("expected 400 for empty items, got %v", err)
	}
}

func TestOrderHandler_Create_NegativeQuantity(t *testing.T) {
	h := NewOrderHandler(&stubOrderService{})

	c, _ := newRequestContext(http.MethodPost, "/orders", `{
		"email": "buyer@x.com", "name": "Buyer", "phone": "555-0102",
		"address": {"country":"IN","state":"KA","city":"Bengaluru","street":"1 MG Road","pincode":"560001"},
		"items": [{"name":"Dosa","quantity":-1,"price":450}], "total": 450
	}`)

	err := h.Create(c)
	if code := httpErrCode(t, err); code != http.StatusBadRequest {
		t.Fatalf("expected 400 for negative quantity, got %v", err)
	}
}

func TestOrderHandler_AdminList(t *testing.T) {
	orders := &stubOrderService{allOrders: []*domain.Order{
		{ID: "o1", UserID: "u1", Email: "a@x.com", Total: 900, Status: domain.StatusPending},
		{ID: "o2", Email: "guest@x.com", IsGuest: true, Status: domain.StatusDelivered},
	}}
	h := NewOrderHandler(orders)

	c, rec := newRequestContext(http.MethodGet, "/admin/orders", "")

	if err := h.AdminList(c); err != nil {
		t.Fatalf("admin list failed: %v", err)
	}

	var resp adminOrdersResponse
	decodeBody(t, rec, &resp)
	if !resp.Success || len(resp.Orders) != 2 {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
	if resp.Orders[0].UserID != "u1" || resp.Orders[1].IsGuest != true {
		t.Fatalf("ownership fields missing: %s", rec.Body.String())
	}
	if resp.Orders[1].Items == nil {
		t.Fatalf("items must serialize as an array, got %s", rec.Body.String())
	}
}
