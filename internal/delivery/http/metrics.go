package http

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	shipmentsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "shiptrack_shipments_created_total",
		Help: "Shipments created through the API.",
	})

	statusTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "shiptrack_status_transitions_total",
		Help: "Shipment status transitions, by target status.",
	}, []string{"status"})
)
