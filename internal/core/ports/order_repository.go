package ports

import (
	"context"

	"github.com/Anukshashirgave-0808/aathidyam-backend/internal/core/domain"
)

// OrderRepository defines persistence operations for orders.
type OrderRepository interface {
	Create(ctx context.Context, order *domain.Order) error
	// FindByUserID returns the user's orders, newest first.
	FindByUserID(ctx context.Context, userID string) ([]*domain.Order, error)
	// FindGuestByEmail returns orders with is_guest=true whose stored email
	// equals the given normalized email.
	FindGuestByEmail(ctx context.Context, email string) ([]*domain.Order, error)
	// ClaimGuestOrder re-attaches a guest order to a user. The update is
	// conditional on is_guest still being true; when the condition no longer
	// holds it returns domain.ErrOrderAlreadyClaimed instead of overwriting.
	ClaimGuestOrder(ctx context.Context, orderID, userID string) error
	// FindAll returns every order, newest first. Admin listings only.
	FindAll(ctx context.Context) ([]*domain.Order, error)
}
