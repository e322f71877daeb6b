package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/Anukshashirgave-0808/aathidyam-backend/internal/api/metrics"
	"github.com/Anukshashirgave-0808/aathidyam-backend/internal/core/domain"
	"github.com/Anukshashirgave-0808/aathidyam-backend/internal/core/ports"
)

// GuestOrderReconciler re-attaches orders placed anonymously to the user who
// logs in with the matching email. Re-running a login is harmless: the
// is_guest predicate excludes already-claimed orders, and the per-order
// update is conditional so a concurrent race degrades to a no-op.
type GuestOrderReconciler struct {
	orders ports.OrderRepository
	log    zerolog.Logger
}

func NewGuestOrderReconciler(orders ports.OrderRepository, log zerolog.Logger) *GuestOrderReconciler {
	return &GuestOrderReconciler{orders: orders, log: log}
}

// Reconcile claims every guest order stored under the normalized email and
// returns the number claimed. A store fault on one order is logged and the
// loop continues: a login must never be blocked by an unrelated
// order-update failure.
func (r *GuestOrderReconciler) Reconcile(ctx context.Context, email, userID string) int {
	guestOrders, err := r.orders.FindGuestByEmail(ctx, email)
	if err != nil {
		metrics.ReconcileErrorsTotal.Inc()
		r.log.Warn().Err(err).Str("user_id", userID).Msg("guest order lookup failed")
		return 0
	}

	claimed := 0
	for _, order := range guestOrders {
		err := r.orders.ClaimGuestOrder(ctx, order.ID, userID)
		switch {
		case err == nil:
			claimed++
			metrics.GuestOrdersReconciledTotal.Inc()
		case errors.Is(err, domain.ErrOrderAlreadyClaimed):
			// Lost a race with a concurrent login for the same email.
		default:
			metrics.ReconcileErrorsTotal.Inc()
			r.log.Warn().Err(err).
				Str("order_id", order.ID).
				Str("user_id", userID).
				Msg("guest order claim failed")
		}
	}
	return claimed
}
