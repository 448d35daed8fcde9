// Package metrics exposes the service counters on the default
// prometheus registry, served at /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// OrdersCreated counts orders completed through the payment flow.
	OrdersCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "stylehub_orders_created_total",
		Help: "Total number of storefront orders created.",
	})

	// PaymentsProcessed counts simulated payment settlements by method.
	PaymentsProcessed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "stylehub_payments_processed_total",
		Help: "Total number of simulated payments processed.",
	}, []string{"method"})

	// AdminLogins counts admin login attempts by outcome.
	AdminLogins = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "stylehub_admin_logins_total",
		Help: "Total number of admin login attempts.",
	}, []string{"outcome"})

	// CartActions counts cart state machine actions by type.
	CartActions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "stylehub_cart_actions_total",
		Help: "Total number of cart actions dispatched.",
	}, []string{"action"})
)
