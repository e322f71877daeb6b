package handler

import "github.com/Anukshashirgave-0808/aathidyam-backend/internal/core/domain"

// --- Request types ---

type addressRequest struct {
	Country string `json:"country" validate:"required"`
	State   string `json:"state"   validate:"required"`
	City    string `json:"city"    validate:"required"`
	Street  string `json:"street"  validate:"required"`
	Pincode string `json:"pincode" validate:"required"`
}

type orderItemRequest struct {
	Name     string `json:"name"     validate:"required"`
	Quantity int    `json:"quantity" validate:"required,gte=1"`
	Price    int64  `json:"price"    validate:"gte=0"`
}

type createOrderRequest struct {
	// Email identifies the guest owner; ignored when a token resolves.
	Email         string             `json:"email"         validate:"omitempty,email"`
	Name          string             `json:"name"          validate:"required"`
	Phone         string             `json:"phone"         validate:"required"`
	Address       addressRequest     `json:"address"       validate:"required"`
	PaymentMethod string             `json:"paymentMethod"`
	Items         []orderItemRequest `json:"items"         validate:"required,min=1,dive"`
	Total         int64              `json:"total"         validate:"gte=0"`
}

// --- Response types ---

type createOrderResponse struct {
	Success bool   `json:"success"`
	OrderID string `json:"orderId"`
	IsGuest bool   `json:"isGuest"`
}

// adminOrderView includes ownership fields the customer-facing views omit.
type adminOrderView struct {
	ID      string             `json:"id"`
	UserID  string             `json:"userId,omitempty"`
	Email   string             `json:"email"`
	IsGuest bool               `json:"isGuest"`
	Items   []domain.OrderItem `json:"items"`
	Total   int64              `json:"total"`
	Status  string             `json:"status"`
}

type adminOrdersResponse struct {
	Success bool             `json:"success"`
	Orders  []adminOrderView `json:"orders"`
}
