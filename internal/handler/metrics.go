package handler

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	checkoutsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "order_service",
			Subsystem: "checkout",
			Name:      "checkouts_total",
			Help:      "Total number of processed checkouts",
		},
	)

	checkoutOrdersTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "order_service",
			Subsystem: "checkout",
			Name:      "orders_total",
			Help:      "Total number of per-seller orders by final status",
		},
		[]string{"status"},
	)

	checkoutDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "order_service",
			Subsystem: "checkout",
			Name:      "duration_seconds",
			Help:      "Histogram of checkout durations in seconds",
			Buckets:   prometheus.DefBuckets,
		},
	)

)

func RegisterMetrics() {
	prometheus.MustRegister(
		checkoutsTotal,
		checkoutOrdersTotal,
		checkoutDuration,
	)
}
