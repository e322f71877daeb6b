// Package metrics defines the custom Prometheus metrics for the aathidyam
// backend. It is the single source of truth for metric names, labels, and
// help strings; promauto registers everything with the default registry at
// package init.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "aathidyam"

// LoginsTotal counts login attempts by outcome.
// Label:
//   - result: "success", "invalid", "forbidden", or "throttled"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, labelled by outcome.",
	},
	[]string{"result"},
)

// RegistrationsTotal counts successful account registrations.
var RegistrationsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of accounts registered.",
	},
)

// OrdersCreatedTotal counts placed orders by ownership at creation time.
// Label:
//   - owner: "guest" or "user"
var OrdersCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "orders_created_total",
		Help:      "Total number of orders placed, by owner kind.",
	},
	[]string{"owner"},
)

// GuestOrdersReconciledTotal counts guest orders re-attached to a user at login.
var GuestOrdersReconciledTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "guest_orders_reconciled_total",
		Help:      "Total number of guest orders claimed by a logging-in user.",
	},
)

// ReconcileErrorsTotal counts store faults during guest-order reconciliation.
// These are logged and swallowed, so the counter is the main visibility.
var ReconcileErrorsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "reconcile_errors_total",
		Help:      "Total number of guest-order reconciliation failures.",
	},
)
