package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/Anukshashirgave-0808/aathidyam-backend/internal/core/domain"
)

func TestReconciler_ClaimsOnlyMatchingGuestOrders(t *testing.T) {
	orders := newStubOrderRepo()
	orders.orders = []*domain.Order{
		{ID: "g1", Email: "a@x.com", IsGuest: true},
		{ID: "g2", Email: "a@x.com", IsGuest: true},
		{ID: "other", Email: "b@x.com", IsGuest: true},
		{ID: "claimed", Email: "a@x.com", IsGuest: false, UserID: "someone"},
	}
	r := NewGuestOrderReconciler(orders, zerolog.Nop())

	claimed := r.Reconcile(context.Background(), "a@x.com", "user_1")
	if claimed != 2 {
		t.Fatalf("expected 2 claimed, got %d", claimed)
	}
	for _, id := range []string{"g1", "g2"} {
		o := findOrder(t, orders, id)
		if o.IsGuest || o.UserID != "user_1" {
			t.Fatalf("order %s not claimed: %+v", id, o)
		}
	}
	if o := findOrder(t, orders, "other"); !o.IsGuest {
		t.Fatalf("another email's order claimed: %+v", o)
	}
	if o := findOrder(t, orders, "claimed"); o.UserID != "someone" {
		t.Fatalf("already-owned order overwritten: %+v", o)
	}
}

func TestReconciler_RerunIsNoOp(t *testing.T) {
	orders := newStubOrderRepo()
	orders.orders = []*domain.Order{
		{ID: "g1", Email: "a@x.com", IsGuest: true},
	}
	r := NewGuestOrderReconciler(orders, zerolog.Nop())

	if n := r.Reconcile(context.Background(), "a@x.com", "user_1"); n != 1 {
		t.Fatalf("first run claimed %d", n)
	}
	if n := r.Reconcile(context.Background(), "a@x.com", "user_1"); n != 0 {
		t.Fatalf("second run claimed %d, want 0", n)
	}
	if o := findOrder(t, orders, "g1"); o.UserID != "user_1" {
		t.Fatalf("owner changed on rerun: %+v", o)
	}
}

func TestReconciler_RaceLoserIsSilent(t *testing.T) {
	orders := newStubOrderRepo()
	orders.orders = []*domain.Order{
		{ID: "g1", Email: "a@x.com", IsGuest: true},
	}
	// Simulate a concurrent login winning the conditional update.
	orders.claimErr["g1"] = domain.ErrOrderAlreadyClaimed
	r := NewGuestOrderReconciler(orders, zerolog.Nop())

	if n := r.Reconcile(context.Background(), "a@x.com", "user_1"); n != 0 {
		t.Fatalf("race loser counted a claim: %d", n)
	}
}

func TestReconciler_PartialFailureContinues(t *testing.T) {
	orders := newStubOrderRepo()
	orders.orders = []*domain.Order{
		{ID: "bad", Email: "a@x.com", IsGuest: true},
		{ID: "good", Email: "a@x.com", IsGuest: true},
	}
	orders.claimErr["bad"] = errors.New("write timeout")
	r := NewGuestOrderReconciler(orders, zerolog.Nop())

	if n := r.Reconcile(context.Background(), "a@x.com", "user_1"); n != 1 {
		t.Fatalf("expected 1 claimed despite fault, got %d", n)
	}
	if o := findOrder(t, orders, "good"); o.IsGuest {
		t.Fatalf("later order skipped after fault: %+v", o)
	}
}

func TestReconciler_LookupFailureReturnsZero(t *testing.T) {
	orders := newStubOrderRepo()
	orders.findErr = errors.New("store unavailable")
	r := NewGuestOrderReconciler(orders, zerolog.Nop())

	if n := r.Reconcile(context.Background(), "a@x.com", "user_1"); n != 0 {
		t.Fatalf("expected 0 on lookup fault, got %d", n)
	}
}
