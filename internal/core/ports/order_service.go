package ports

import (
	"context"

	"github.com/Anukshashirgave-0808/aathidyam-backend/internal/core/domain"
)

// AddressInput holds the shipping destination of a new order.
type AddressInput struct {
	Country string
	State   string
	City    string
	Street  string
	Pincode string
}

// OrderItemInput is a single line item of a new order.
type OrderItemInput struct {
	Name     string
	Quantity int
	Price    int64
}

// CreateOrderInput carries all data needed to place an order. TokenString is
// optional: when it resolves to a user the order is stamped with that
// identity, otherwise it is created as a guest order under Email.
type CreateOrderInput struct {
	TokenString   string
	Email         string
	Name          string
	Phone         string
	Address       AddressInput
	PaymentMethod string
	Items         []OrderItemInput
	Total         int64
}

// CreateOrderResult is returned after placing an order.
type CreateOrderResult struct {
	OrderID string
	IsGuest bool
}

// OrderService defines use-case operations for orders.
type OrderService interface {
	CreateOrder(ctx context.Context, input CreateOrderInput) (*CreateOrderResult, error)
	// ListUserOrders returns the given user's orders, newest first.
	ListUserOrders(ctx context.Context, userID string) ([]*domain.Order, error)
	// ListAllOrders returns every order. Callers must have enforced the
	// admin role before reaching this.
	ListAllOrders(ctx context.Context) ([]*domain.Order, error)
}
