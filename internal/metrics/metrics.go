package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Technical metrics
	RequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	ResponseTime = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_response_time_seconds",
		Help:    "Duration of HTTP requests",
		Buckets: []float64{0.1, 0.5, 1, 2, 5},
	}, []string{"method", "path"})

	// Business metrics
	RentalTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "rental_transitions_total",
		Help: "Total number of rental lifecycle transitions",
	}, []string{"transition"})

	EquipmentListed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "equipment_listed_total",
		Help: "Total number of equipment listings created",
	})

	MessagesDelivered = promauto.NewCounter(prometheus.CounterOpts{
		Name: "messages_delivered_total",
		Help: "Total number of inbox messages delivered",
	})
)
