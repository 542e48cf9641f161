package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// APIRequests counts calls to the external ticketing API per operation
	// and HTTP status ("error" when no response was received).
	APIRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tikiti_ticketing_api_requests_total",
			Help: "Requests issued to the external ticketing API.",
		},
		[]string{"operation", "status"},
	)

	// Checkouts counts checkout attempts by result (succeeded, failed,
	// rejected).
	Checkouts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tikiti_checkouts_total",
			Help: "Checkout attempts by result.",
		},
		[]string{"result"},
	)

	// TicketsPurchased counts individual tickets bought through checkout.
	TicketsPurchased = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "tikiti_tickets_purchased_total",
			Help: "Tickets purchased through the storefront checkout.",
		},
	)
)
