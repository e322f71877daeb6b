package domain

import "time"

// OrderStatus represents the lifecycle state of an order.
type OrderStatus string

const (
	StatusPending   OrderStatus = "Pending"
	StatusConfirmed OrderStatus = "Confirmed"
	StatusShipped   OrderStatus = "Shipped"
	StatusDelivered OrderStatus = "Delivered"
	StatusCancelled OrderStatus = "Cancelled"
)

// Address holds the shipping destination of an order.
type Address struct {
	Country string `json:"country" bson:"country"`
	State   string `json:"state" bson:"state"`
	City    string `json:"city" bson:"city"`
	Street  string `json:"street" bson:"street"`
	Pincode string `json:"pincode" bson:"pincode"`
}

// OrderItem is a single line item within an order.
type OrderItem struct {
	Name     string `json:"name" bson:"name"`
	Quantity int    `json:"quantity" bson:"quantity"`
	// Price is per unit, in minor currency units.
	Price int64 `json:"price" bson:"price"`
}

// Order is the core aggregate for a placed order. Ownership is exclusive:
// IsGuest true means UserID is empty and the order is tracked by Email only;
// IsGuest false means UserID is set. A guest order transitions to user-owned
// exactly once, when a login matches its stored email.
type Order struct {
	ID            string      `json:"id" bson:"_id,omitempty"`
	UserID        string      `json:"userId,omitempty" bson:"user_id,omitempty"`
	Email         string      `json:"email" bson:"email"`
	IsGuest       bool        `json:"isGuest" bson:"is_guest"`
	Name          string      `json:"name" bson:"name"`
	Phone         string      `json:"phone" bson:"phone"`
	Address       Address     `json:"address" bson:"address"`
	PaymentMethod string      `json:"paymentMethod" bson:"payment_method"`
	Items         []OrderItem `json:"items" bson:"items"`
	// Total is in minor currency units and never negative.
	Total     int64       `json:"total" bson:"total"`
	Status    OrderStatus `json:"status" bson:"status"`
	CreatedAt time.Time   `json:"createdAt" bson:"created_at"`
}
