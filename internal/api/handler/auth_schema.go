package handler

import (
	"github.com/Anukshashirgave-0808/aathidyam-backend/internal/core/domain"
	"github.com/Anukshashirgave-0808/aathidyam-backend/internal/core/ports"
)

// --- Request types ---

type registerRequest struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Mobile   string `json:"mobile"`
	Password string `json:"password" validate:"required,min=8"`
}

type loginRequest struct {
	Email     string `json:"email"     validate:"required,email"`
	Password  string `json:"password"  validate:"required"`
	LoginType string `json:"loginType" validate:"omitempty,oneof=user admin"`
}

// --- Response types ---

// errorResponse is the standard error envelope returned on 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

type successResponse struct {
	Success bool `json:"success"`
}

type loginResponse struct {
	Success bool                 `json:"success"`
	Token   string               `json:"token"`
	User    ports.UserProjection `json:"user"`
}

// orderView is the order projection returned by listing endpoints.
type orderView struct {
	ID     string             `json:"id"`
	Items  []domain.OrderItem `json:"items"`
	Total  int64              `json:"total"`
	Status string             `json:"status"`
}

type ordersResponse struct {
	Success bool        `json:"success"`
	Orders  []orderView `json:"orders"`
}

func toOrderViews(orders []*domain.Order) []orderView {
	views := make([]orderView, len(orders))
	for i, o := range orders {
		items := o.Items
		if items == nil {
			items = []domain.OrderItem{}
		}
		views[i] = orderView{
			ID:     o.ID,
			Items:  items,
			Total:  o.Total,
			Status: string(o.Status),
		}
	}
	return views
}
