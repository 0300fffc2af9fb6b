package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "washbook_http_requests_total",
		Help: "HTTP requests by method, route and status.",
	}, []string{"method", "route", "status"})

	BookingOutcomes = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "washbook_booking_outcomes_total",
		Help: "Booking submissions by outcome (created, adjusted, rejected).",
	}, []string{"outcome"})

	SweepApplied = promauto.NewCounter(prometheus.CounterOpts{
		Name: "washbook_pricing_sweep_applied_total",
		Help: "Scheduled pricing changes applied by the sweep.",
	})

	NotificationsSent = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "washbook_notifications_total",
		Help: "Outbound notifications by kind.",
	}, []string{"kind"})
)
