package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/Anukshashirgave-0808/aathidyam-backend/internal/api/metrics"
	"github.com/Anukshashirgave-0808/aathidyam-backend/internal/core/domain"
	"github.com/Anukshashirgave-0808/aathidyam-backend/internal/core/ports"
)

// OrderService implements order placement and listings.
type OrderService struct {
	orders   ports.OrderRepository
	identity ports.IdentityService
	log      zerolog.Logger
}

func NewOrderService(orders ports.OrderRepository, identity ports.IdentityService, log zerolog.Logger) *OrderService {
	return &OrderService{orders: orders, identity: identity, log: log}
}

// CreateOrder places an order. When the optional token resolves to a user,
// the order is stamped with that identity and is_guest=false; any token
// failure falls back to the guest path with the submitted email.
func (s *OrderService) CreateOrder(ctx context.Context, input ports.CreateOrderInput) (*ports.CreateOrderResult, error) {
	if input.Total < 0 {
		return nil, fmt.Errorf("%w: total must not be negative", domain.ErrValidation)
	}

	email := domain.NormalizeEmail(input.Email)
	userID := ""
	isGuest := true

	if input.TokenString != "" {
		user, err := s.identity.ResolveByToken(ctx, input.TokenString)
		if err != nil {
			s.log.Debug().Err(err).Msg("order token unusable, placing as guest")
		} else {
			userID = user.ID
			email = user.Email
			isGuest = false
		}
	}

	if isGuest && email == "" {
		return nil, fmt.Errorf("%w: guest orders require an email", domain.ErrValidation)
	}

	items := make([]domain.OrderItem, len(input.Items))
	for i, item := range input.Items {
		items[i] = domain.OrderItem{
			Name:     item.Name,
			Quantity: item.Quantity,
			Price:    item.Price,
		}
	}

	paymentMethod := input.PaymentMethod
	if paymentMethod == "" {
		paymentMethod = "COD"
	}

	order := &domain.Order{
		ID:      uuid.NewString(),
		UserID:  userID,
		Email:   email,
		IsGuest: isGuest,
		Name:    input.Name,
		Phone:   input.Phone,
		Address: domain.Address{
			Country: input.Address.Country,
			State:   input.Address.State,
			City:    input.Address.City,
			Street:  input.Address.Street,
			Pincode: input.Address.Pincode,
		},
		PaymentMethod: paymentMethod,
		Items:         items,
		Total:         input.Total,
		Status:        domain.StatusPending,
		CreatedAt:     time.Now().UTC(),
	}

	if err := s.orders.Create(ctx, order); err != nil {
		s.log.Error().Err(err).Msg("failed to create order")
		return nil, err
	}

	owner := "user"
	if isGuest {
		owner = "guest"
	}
	metrics.OrdersCreatedTotal.WithLabelValues(owner).Inc()
	s.log.Info().Str("order_id", order.ID).Bool("is_guest", isGuest).Msg("order created")

	return &ports.CreateOrderResult{OrderID: order.ID, IsGuest: isGuest}, nil
}

// ListUserOrders returns the user's orders, newest first.
func (s *OrderService) ListUserOrders(ctx context.Context, userID string) ([]*domain.Order, error) {
	return s.orders.FindByUserID(ctx, userID)
}

// ListAllOrders returns every order, newest first.
func (s *OrderService) ListAllOrders(ctx context.Context) ([]*domain.Order, error) {
	return s.orders.FindAll(ctx)
}
